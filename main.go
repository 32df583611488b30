package main

import "github.com/rnwolfe/hop/cmd"

func main() {
	cmd.Execute()
}
