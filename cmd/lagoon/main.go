package main

import "github.com/katalvlaran/lagoon/internal/cli"

func main() {
	cli.Execute()
}
