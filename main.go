package main

import "github.com/alexiusacademia/beamcalc/cmd"

func main() {
	cmd.Execute()
}
