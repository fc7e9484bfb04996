package main

import "github.com/OpenTraceLab/OpenTraceSweeper/cmd/sweeper/cmd"

func main() {
	cmd.Execute()
}
