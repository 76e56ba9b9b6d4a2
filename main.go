package main

import "github.com/bazarkua/molexa/cli"

func main() {
	cli.Launch()
}
