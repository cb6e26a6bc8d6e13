package main

import "github.com/davarch/glab-status/cmd/glab-status/cli"

func main() {
	cli.Execute()
}
