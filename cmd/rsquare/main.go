package main

import "github.com/mcoot/royalsquare/internal/cli"

func main() {
	cli.Execute()
}
