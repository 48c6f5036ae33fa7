package main

import "github.com/OpenTraceLab/multislider/cmd/msl/cmd"

func main() {
	cmd.Execute()
}
