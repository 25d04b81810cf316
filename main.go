package main

import "github.com/cfdlabs/ringdiff/cmd"

func main() {
	cmd.Execute()
}
