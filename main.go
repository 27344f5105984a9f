package main

import "github.com/rotblauer/pintour/cmd"

func main() {
	cmd.Execute()
}
