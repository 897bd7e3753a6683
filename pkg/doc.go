// Package pkg provides the core libraries for the conveyor engineering
// console.
//
// # Overview
//
// The console takes a partially-populated conveyor description, fills in
// and reconciles it, runs the sliderbed formula set, and reports what an
// application engineer needs to know before releasing a design. The pkg
// directory is organized into four main areas:
//
//  1. [schema], [migrate] - Input model (raw fields, canonical form, migration)
//  2. [geometry], [formula], [validate] - Engineering core (resolver, formulas, rules)
//  3. [pipeline], [fixture] - Orchestration and parity replay
//  4. [cache], [errors], [io], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow through a calculation:
//
//	RawInput (legacy or current field names)
//	         ↓
//	    [migrate] package (idempotent migration + canonicalization)
//	         ↓
//	    [geometry] package (resolve the active geometry mode)
//	         ↓
//	    [formula] package (dependency-ordered formula pipeline)
//	         ↓
//	    [validate] package (rule engine, findings partitioned by severity)
//	         ↓
//	    Result (outputs + errors + warnings + metadata)
//
// # Quick Start
//
// Run a calculation end to end:
//
//	import (
//	    "context"
//	    "github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/pipeline"
//	    "github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
//	)
//
//	raw := schema.RawInput{
//	    "geometry_mode":      "length_angle",
//	    "conveyor_length_in": 120.0,
//	    "belt_width_in":      18.0,
//	    "belt_speed_fpm":     60.0,
//	}
//	result, err := pipeline.RunCalculation(context.Background(), pipeline.Request{Inputs: raw})
//
// Replay recorded parity fixtures against the current formulas:
//
//	import "github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/fixture"
//
//	fixtures, err := fixture.LoadDir("examples/fixtures")
//	for _, fx := range fixtures {
//	    result := pipeline.Evaluate(ctx, migrate.Normalize(fx.RawInput()), schema.DefaultParameters())
//	    cmp := fixture.Compare(result.Outputs, &fx)
//	}
//
// # Design Principles
//
// The engineering core is deterministic and side-effect free: the same
// canonical input and parameters always produce the same outputs and the
// same findings, in the same order. Everything impure (caching, logging,
// metadata stamping) lives in the pipeline Runner and the CLI so that
// embedding callers can drop straight onto the pure stages.
package pkg
