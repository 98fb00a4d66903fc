package main

import "github.com/ridoystarlord/prismaviz/cmd"

func main() {
	cmd.Execute()
}
