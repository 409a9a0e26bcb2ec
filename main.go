package main

import "github.com/alexiusacademia/goframe/cmd"

func main() {
	cmd.Execute()
}
