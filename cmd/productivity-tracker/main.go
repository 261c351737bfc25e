// Package main is the entry point for the productivity tracker.
package main

import (
	"productivity-tracker/internal/cmd"
)

func main() {
	cmd.Execute()
}
