package main

import "github.com/mouse-blink/tracecov/cmd"

func main() {
	cmd.Execute()
}
