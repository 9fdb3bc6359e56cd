package main

import "github.com/viant/kdtree/internal/cli"

func main() {
	cli.Execute()
}
