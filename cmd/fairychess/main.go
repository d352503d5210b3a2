package main

import "github.com/mcoot/fairychess/internal/cli"

func main() {
	cli.Execute()
}
