package main

import "github.com/OpenTraceLab/fpgen/cmd/fpgen/cmd"

func main() {
	cmd.Execute()
}
