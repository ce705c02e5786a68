package core

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestIsAmmoName checks the naming conventions the classifier recognizes.
func TestIsAmmoName(t *testing.T) {
	tests := []struct {
		name string
		ammo bool
	}{
		// Metric calibers
		{name: "7.62x54R BT", ammo: true},
		{name: "5.56x45mm FMJ", ammo: true},
		{name: "9x19mm Pst", ammo: true},
		{name: "12.7x55m STs-130", ammo: true},
		// Shotgun loads
		{name: "12 Gauge Slug", ammo: true},
		{name: "20 gauge buckshot", ammo: true},
		{name: "Flechette Shell", ammo: true},
		// Imperial calibers need a bullet-type word next to the leading dot
		{name: ".45 ACP", ammo: true},
		{name: ".50 AE", ammo: true},
		{name: ".357 Magnum", ammo: true},
		// Non-ammo
		{name: "Heavy Plate", ammo: false},
		{name: "Tactical Vest 6x3", ammo: false}, // no unit suffix after dimensions
		{name: ".badconfig", ammo: false},
		{name: "Medkit", ammo: false},
		{name: "", ammo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ammo, IsAmmoName(tt.name))
		})
	}
}

// TestBundleConverterScalesAmmo multiplies ammo prices by the bundle size and
// leaves everything else untouched.
func TestBundleConverterScalesAmmo(t *testing.T) {
	c := NewBundleConverter(60, nil)

	price, scaled := c.Convert("7.62x54R BT", decimal.RequireFromString("9.99"))
	assert.True(t, scaled)
	assert.True(t, price.Equal(decimal.RequireFromString("599.4")), "got %s", price)

	price, scaled = c.Convert("Heavy Plate", decimal.RequireFromString("12000"))
	assert.False(t, scaled)
	assert.True(t, price.Equal(decimal.NewFromInt(12000)), "got %s", price)
}

// TestBundleConverterPassThrough leaves ammo prices alone at bundle size 1,
// and clamps sizes below 1.
func TestBundleConverterPassThrough(t *testing.T) {
	for _, size := range []int{1, 0, -5} {
		c := NewBundleConverter(size, nil)
		assert.Equal(t, 1, c.BundleSize())

		price, _ := c.Convert("7.62x54R BT", decimal.NewFromInt(10))
		assert.True(t, price.Equal(decimal.NewFromInt(10)), "got %s", price)
	}
}

// TestBundleConverterCustomClassifier overrides the default naming heuristic.
func TestBundleConverterCustomClassifier(t *testing.T) {
	custom := func(name string) bool { return strings.HasPrefix(name, "ammo:") }
	c := NewBundleConverter(30, custom)

	assert.True(t, c.IsAmmo("ammo:special"))
	assert.False(t, c.IsAmmo("7.62x54R BT"))

	price, scaled := c.Convert("ammo:special", decimal.NewFromInt(2))
	assert.True(t, scaled)
	assert.True(t, price.Equal(decimal.NewFromInt(60)), "got %s", price)
}

// TestBundleConverterExactArithmetic verifies decimal scaling carries no
// floating point artifacts.
func TestBundleConverterExactArithmetic(t *testing.T) {
	c := NewBundleConverter(60, nil)
	price, _ := c.Convert("5.45x39mm HP", decimal.RequireFromString("0.1"))
	assert.True(t, price.Equal(decimal.NewFromInt(6)), "got %s", price)
}
