package main

import "github.com/sw33tLie/ycindex/cmd"

func main() {
	cmd.Execute()
}
