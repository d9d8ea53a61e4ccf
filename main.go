package main

import "audiocel/internal/cli"

func main() {
	cli.Execute()
}
