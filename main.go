// Package main is the entry point for the pipcheck CLI application.
//
// pipcheck lists installed Python packages grouped by how far behind their
// latest release they are.
package main

import "github.com/ajxudir/pipcheck/cmd"

func main() {
	cmd.Execute()
}
