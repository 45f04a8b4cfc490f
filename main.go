package main

import "github.com/Kariqs/klenhub-api/commands"

func main() {
	commands.Execute()
}
