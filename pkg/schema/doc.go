// Package schema defines the shared vocabulary of the conveyor calculation
// core: raw and canonical input shapes, enumerated mode sets, engineering
// parameters, computed outputs, and validation findings.
//
// # Input Lifecycle
//
// Callers supply a [RawInput], an open map of named engineering fields that
// may be partially populated or carry legacy field names from earlier schema
// revisions. The migrate package upgrades a RawInput into canonical shape and
// decodes it into a [CanonicalInput], a typed, internally-consistent value.
// CanonicalInput is immutable once produced: every downstream component
// (geometry, formula, validate) reads it and returns new values.
//
// # Modes
//
// Several field groups are governed by enumerated modes (geometry, speed,
// frame height, support, tracking, construction, shaft sizing). Modes are
// closed sets: consuming functions switch exhaustively over the variants and
// panic on unknown values, which is a programmer error rather than a domain
// condition. Adding a mode means adding a constant and visiting every switch.
//
// # Parameters
//
// Engineering constants (friction coefficient, starting pull, clearances,
// validation thresholds) live in [Parameters]. Process-wide defaults come
// from [DefaultParameters]; callers override per call via [Overrides]. No
// package-level mutable state is involved, so tests can substitute alternate
// constants freely.
package schema
