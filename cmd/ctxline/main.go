package main

import "github.com/giannimassi/ctxline/internal/cli"

func main() {
	cli.Execute()
}
