package main

import "go.llib.dev/subspace/cmd/subspace/commands"

func main() {
	commands.Execute()
}
