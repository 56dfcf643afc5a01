package main

import "github.com/emrgen/strata/cmd"

func main() {
	cmd.Execute()
}
