package main

import "ggfid/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
