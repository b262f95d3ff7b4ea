package main

import "backdrop/cli"

func main() {
	cli.Execute()
}
