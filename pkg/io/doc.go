// Package io reads and writes the file formats the CLI exchanges with
// external tools.
//
// Three formats are supported:
//   - Raw input documents: JSON objects of named engineering fields,
//     exactly the shape external callers submit ([ImportInput]).
//   - Calculation results: JSON, round-trippable for downstream tooling
//     ([ExportResult]).
//   - Parameter overrides: TOML files of advanced engineering constants
//     ([ImportOverrides]).
//
// The package does no validation beyond decoding; malformed engineering
// data flows through migration and comes back as validation findings.
package io
