// Package unit implements the unit registry owned by one quantity kind.
//
// This package is pure domain code:
//   - Defines the Unit value type (canonical name, aliases, base flag, factor)
//   - Implements the Registry collection with case-insensitive lookup
//   - Provides Builder, the fluent definition API used by declarative sources
//   - Has no knowledge of YAML parsing, caching or the command line
//
// # Factors
//
// Every unit carries exactly one factor: the number of base units in one of
// that unit, held as an exact fraction so "2/3 fireball" loses nothing. The
// base unit's factor is 1. Factors between two non-base units
// are never stored; the conversion package derives them through the base, so
// a registry always forms a star anchored at its base unit.
//
// # Lifecycle
//
// A Registry is populated with Register and then sealed. Sealing requires a
// base unit and freezes the registry; a sealed Registry is safe for concurrent
// reads without locking.
//
// Provider is the read-only interface Registry implements, so callers that
// only resolve units can accept a narrower dependency.
package unit
