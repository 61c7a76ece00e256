// Package main is the entry point for the efitest CLI.
package main

import "efitest.dev/pkg/efitest/cmd"

func main() {
	cmd.Execute()
}
