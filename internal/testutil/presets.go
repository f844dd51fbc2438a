// Package testutil provides shared fixtures for tests: the Magic quantity
// kind and helpers for writing definition and config files.
package testutil

import (
	"github.com/sahidursuman/measured/internal/domain/unit"
	"github.com/sahidursuman/measured/internal/measurable"
)

// DefineMagic declares the Magic fixture units.
//
//	magic_missile (base)  aliases magic_missiles
//	fireball = 2.5 magic_missile  aliases fire, fireballs
//	ice      = 2 magic_missile    alias ice (deduplicated)
//	arcane   = 10 magic_missile
//	ultima   = 10 arcane
func DefineMagic(b *unit.Builder) {
	b.Base("magic_missile", "magic_missiles").
		Unit("fireball", "2.5 magic_missile", "fire", "fireballs").
		Unit("ice", "2 magic_missile", "ice").
		Unit("arcane", "10 magic_missile").
		Unit("ultima", "10 arcane")
}

var magic = NewMagic()

// Magic returns the shared Magic kind.
func Magic() *measurable.Kind {
	return magic
}

// NewMagic returns a fresh Magic kind, distinct from Magic().
func NewMagic(opts ...measurable.KindOption) *measurable.Kind {
	return measurable.NewKind("Magic", DefineMagic, opts...)
}

// MagicUnits is Magic().Units().
var MagicUnits = []string{"arcane", "fireball", "ice", "magic_missile", "ultima"}

// MagicUnitsWithAliases is Magic().UnitsWithAliases().
var MagicUnitsWithAliases = []string{"arcane", "fire", "fireball", "fireballs", "ice", "magic_missile", "magic_missiles", "ultima"}

// MagicYAML is the Magic fixture in unit definition file form.
const MagicYAML = `quantities:
  - name: Magic
    base:
      name: magic_missile
      aliases: [magic_missiles]
    units:
      - name: fireball
        value: "2.5 magic_missile"
        aliases: [fire, fireballs]
      - name: ice
        value: "2 magic_missile"
        aliases: [ice]
      - name: arcane
        value: "10 magic_missile"
      - name: ultima
        value: "10 arcane"
`
