package main

import "github.com/itsmostafa/gonav/cmd"

func main() {
	cmd.Execute()
}
