package main

import "github.com/mydehq/subsort/internal/cli"

func main() {
	cli.Execute()
}
