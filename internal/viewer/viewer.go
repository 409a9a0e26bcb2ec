// Package viewer shows a solid as a wireframe in an interactive window.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/alexiusacademia/goframe/internal/kernel"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoDisplay is returned when there is no display to open a window on
var ErrNoDisplay = errors.New("no display available")

// Options control the viewer window
type Options struct {
	Title  string
	Width  int
	Height int
	// Scale converts model units to viewer units; the default maps mm to m
	Scale float64
	Grid  bool
}

// DefaultOptions returns a 1280x720 window with a metre grid
func DefaultOptions() Options {
	return Options{
		Title:  "goframe",
		Width:  1280,
		Height: 720,
		Scale:  0.001,
		Grid:   true,
	}
}

// Available reports whether a window can be opened
func Available() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Show opens a window with an orbiting camera around s and blocks until it
// is closed
func Show(s *kernel.Solid, opts Options) error {
	return ShowContext(context.Background(), s, opts)
}

// ShowContext is Show that also closes the window when ctx is done
func ShowContext(ctx context.Context, s *kernel.Solid, opts Options) error {
	if s == nil || s.IsEmpty() {
		return fmt.Errorf("nothing to show")
	}
	if !Available() {
		return ErrNoDisplay
	}
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	if opts.Title == "" {
		opts.Title = def.Title
	}

	segments := Wireframe(s, opts.Scale)
	radius := float32(extent(segments))

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("could not open viewer window")
	}
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(2.2*radius, 1.4*radius, 2.2*radius),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	edge := rl.NewColor(40, 70, 120, 255)
	lines := make([][2]rl.Vector3, len(segments))
	for i, seg := range segments {
		lines[i] = [2]rl.Vector3{toRL(seg.A), toRL(seg.B)}
	}
	status := fmt.Sprintf("%d cells  %d edges", s.NumCells(), len(segments))

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(camera)
		if opts.Grid {
			rl.DrawGrid(int32(4*radius)+2, 1)
		}
		for _, l := range lines {
			rl.DrawLine3D(l[0], l[1], edge)
		}
		rl.EndMode3D()

		rl.DrawText(opts.Title, 10, 10, 20, rl.DarkGray)
		rl.DrawText(status, 10, 34, 16, rl.Gray)
		rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
		rl.EndDrawing()
	}
	return ctx.Err()
}

func toRL(v kernel.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}
