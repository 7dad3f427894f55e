package main

import "github.com/plasmatools/wakecheck/cmd"

func main() {
	cmd.Execute()
}
