package main

import "github.com/vietddude/deploycheck/internal/cli"

func main() {
	cli.Execute()
}
