// Package migrate upgrades possibly-partial or legacy-shaped raw inputs
// into the canonical schema.
//
// # Pipeline
//
// [Migrate] applies seven steps in a fixed order, each a pure transform that
// copies the input before writing:
//
//  1. Pulley diameter unification (legacy single diameter -> per-pulley pair)
//  2. Optional feature defaulting (cleats, tracking, shaft and frame modes)
//  3. Support method migration (legacy categorical -> per-end fields)
//  4. Conditional field stripping (mode-gated fields removed outright)
//  5. Speed mode migration (inferred from legacy speed data)
//  6. Geometry mode defaulting (length+angle, derived horizontal run)
//  7. Frame construction defaulting (construction type + sub-parameter)
//
// Each step only activates when its target fields are absent, so every step
// is idempotent on its own and the whole pipeline satisfies
// Migrate(Migrate(x)) == Migrate(x).
//
// [Normalize] composes Migrate with [Canonicalize], which decodes the
// migrated map into a typed [schema.CanonicalInput]. Neither function ever
// returns an error: hard failures are deferred to the validation engine so
// diagnostics stay available for any input shape.
//
// # Legacy Helpers
//
// Two geometry helpers from an earlier schema revision are retained at the
// bottom of legacy.go for historical parity. They are KNOWN INCORRECT for
// inclined conveyors and must never be called from the canonical pipeline;
// route through the geometry package instead.
package migrate
