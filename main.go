package main

import "github.com/agentic-research/promptgen/cmd"

func main() {
	cmd.Execute()
}
