package main

import "schemebot/internal/cli"

func main() {
	cli.Execute()
}
