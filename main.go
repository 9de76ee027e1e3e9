package main

import "github.com/philipparndt/snapcircle/cmd"

func main() {
	cmd.Execute()
}
