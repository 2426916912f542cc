package main

import "github.com/katalvlaran/ssassign/cli"

func main() {
	cli.Execute()
}
