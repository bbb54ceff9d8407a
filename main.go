package main

import "github.com/alexiusacademia/goscol/cmd"

func main() {
	cmd.Execute()
}
