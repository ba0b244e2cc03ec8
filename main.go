package main

import "pawlist/internal/cli"

func main() {
	cli.Execute()
}
