package main

import "github.com/pfrederiksen/khl-team/internal/cli"

func main() {
	cli.Execute()
}
