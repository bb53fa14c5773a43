package main

import "github.com/iksnae/legislation-tracker/cmd"

func main() {
	cmd.Execute()
}
