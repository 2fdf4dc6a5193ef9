package main

import "github.com/bootstate-dev/bootstate/internal/cli"

func main() {
	cli.Execute()
}
