package main

import "github.com/hiddenvs/slicecore/cmd/slicecore/cmd"

func main() {
	cmd.Execute()
}
