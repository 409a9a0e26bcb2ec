package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "goframe v"+Version, String())

	oldCommit, oldTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = oldCommit, oldTime })

	GitCommit, BuildTime = "abc123", "2025-06-01"
	assert.Equal(t, "goframe v"+Version+" (abc123, built 2025-06-01)", String())
}
