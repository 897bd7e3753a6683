// Package formula implements the dependency-ordered calculation pipeline
// that turns a canonical input, a parameter set, and resolved geometry into
// the full engineering output.
//
// # Contract
//
// [Calculate] is pure, deterministic, and total: it never returns an error
// and never panics for numerically valid canonical input. Division guards
// are built into each formula; domain problems (a zero belt width, an
// impossible tube wall) come out as zero results or explicit status fields
// and are judged by the validation engine, not here.
//
// # Order
//
// Computation proceeds in a fixed dependency order; each step consumes only
// values computed before it:
//
//	belt coefficients -> belt length/weight -> load -> pulls -> drive speed
//	-> throughput -> pulley face -> shafts -> frame height -> rollers
//	-> tube stress
//
// [Stages] exposes this order as data for tooling (the graph command
// renders it). Every individual formula is exported and independently
// testable against fixed numeric inputs.
//
// All lengths and diameters are inches, weights pounds, speeds feet per
// minute, throughput parts per hour.
package formula
