// Package main is the entry point for the dicepass CLI.
package main

import "dicepass.dev/pkg/dicepass/cmd"

func main() {
	cmd.Execute()
}
