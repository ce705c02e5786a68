// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/kanade13/deltaforce/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableItemWidth calculates the maximum width for item names in table
// output based on terminal width and the fixed columns.
func GetMaxTableItemWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the timestamp and price columns with borders/padding
	baseWidth := 40

	maxItemWidth := termWidth - baseWidth
	if maxItemWidth < 16 {
		maxItemWidth = 16
	}
	return maxItemWidth
}

// TruncateItem shortens an item name that exceeds the given width, keeping
// the tail where condition suffixes live.
func TruncateItem(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return name
}
