package main

import "github.com/mcoot/tictactoe/internal/cli"

func main() {
	cli.Execute()
}
