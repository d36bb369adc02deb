package main

import "github.com/leet-tools/leet/cmd"

func main() {
	cmd.Execute()
}
