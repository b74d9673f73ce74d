package main

import "zfast-backend/cmd/zfastctl/commands"

func main() {
	commands.Execute()
}
