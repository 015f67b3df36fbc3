package main

import "housing-cli/cmd"

func main() {
	cmd.Execute()
}
