package core

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Classifier reports whether an item name denotes ammunition. The default is
// IsAmmoName; callers can inject their own to override per-item decisions.
type Classifier func(name string) bool

// Ammo naming conventions: metric calibers like "5.56x45mm" or "7.62x54R",
// shotgun gauges, and imperial calibers like ".45 ACP" where the leading dot
// is only trusted next to a bullet-type abbreviation.
var (
	ammoCaliberRe  = regexp.MustCompile(`(?i)\d+(?:\.\d+)?x\d+(?:\.\d+)?(?:mm|m|r)`)
	ammoLeadDotRe  = regexp.MustCompile(`^\.[0-9]`)
	ammoBulletWord = regexp.MustCompile(`(?i)\b(acp|ae|magnum|sp|hp|fmj|jhp|ap|bt|rip)\b`)
)

// IsAmmoName is the default ammunition Classifier.
func IsAmmoName(name string) bool {
	lowered := strings.ToLower(name)
	if ammoCaliberRe.MatchString(lowered) {
		return true
	}
	if strings.Contains(lowered, "gauge") {
		return true
	}
	if ammoLeadDotRe.MatchString(lowered) && ammoBulletWord.MatchString(lowered) {
		return true
	}
	for _, keyword := range []string{"buckshot", "slug", "flechette"} {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// BundleConverter rescales per-round ammunition prices to per-bundle prices.
// Non-ammo items pass through unchanged.
type BundleConverter struct {
	classify   Classifier
	bundleSize int
	multiplier decimal.Decimal
}

// NewBundleConverter creates a converter with the given bundle size. A size
// below 1 is treated as 1 (pass-through). A nil classifier uses IsAmmoName.
func NewBundleConverter(bundleSize int, classify Classifier) *BundleConverter {
	if bundleSize < 1 {
		bundleSize = 1
	}
	if classify == nil {
		classify = IsAmmoName
	}
	return &BundleConverter{
		classify:   classify,
		bundleSize: bundleSize,
		multiplier: decimal.NewFromInt(int64(bundleSize)),
	}
}

// BundleSize returns the configured bundle size.
func (c *BundleConverter) BundleSize() int { return c.bundleSize }

// IsAmmo exposes the classifier's decision for one item name, so callers can
// inspect (and report) how an item was classified.
func (c *BundleConverter) IsAmmo(name string) bool { return c.classify(name) }

// Convert returns the output price for an item and whether the bundle
// multiplier was applied. converted = raw * bundleSize for ammo, raw otherwise.
func (c *BundleConverter) Convert(name string, price decimal.Decimal) (decimal.Decimal, bool) {
	if c.bundleSize > 1 && c.classify(name) {
		return price.Mul(c.multiplier), true
	}
	return price, c.classify(name)
}
