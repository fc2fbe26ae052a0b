package main

import "github.com/alexiusacademia/gocurve/cmd"

func main() {
	cmd.Execute()
}
