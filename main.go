package main

import "github.com/pratik-anurag/feluda-examples/cli"

func main() {
	cli.Execute()
}
