// Package main is the entry point for the skstress CLI.
package main

import "skstress.dev/pkg/skstress/cmd"

func main() {
	cmd.Execute()
}
