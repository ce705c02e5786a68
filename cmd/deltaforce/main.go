// Package main is the entry point for the deltaforce CLI.
package main

import (
	"github.com/kanade13/deltaforce/cmd"
	"github.com/kanade13/deltaforce/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
