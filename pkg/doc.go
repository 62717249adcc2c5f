// Package pkg provides the core libraries for p3loops.
//
// # Overview
//
// p3loops answers two questions about directed edges on the boundary of a
// unit square whose sides are identified in pairs (North glued to East,
// South glued to West, positions preserved): do the edges chain into a
// valid path, and do any two of them cross as chords of the boundary
// circle. The pkg directory is organized into:
//
//  1. [square] - The core model and predicates (sides, points, edges,
//     path validity, crossing detection)
//  2. [manifest] - TOML edge-list files for the CLI
//  3. [errors] - Structured errors with machine-readable codes
//  4. [buildinfo] - Build-time version stamping
//
// # Data Flow
//
// The typical flow through p3loops:
//
//	TOML manifest or inline specs
//	         ↓
//	    [manifest] / [square] parsing (the only fallible layer)
//	         ↓
//	    [square] predicates (pure booleans over immutable values)
//	         ↓
//	    CLI verdict output
//
// [square]: github.com/jacksonloper/p3loops/pkg/square
// [manifest]: github.com/jacksonloper/p3loops/pkg/manifest
// [errors]: github.com/jacksonloper/p3loops/pkg/errors
// [buildinfo]: github.com/jacksonloper/p3loops/pkg/buildinfo
package pkg
