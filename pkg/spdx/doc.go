// Package spdx provides normalization and parsing for SPDX-style license
// expressions.
//
// # Overview
//
// An SPDX expression is a boolean combination of license identifiers using
// AND, OR and WITH, for example:
//
//	MIT OR (Apache-2.0 AND GPL-3.0-only)
//	GPL-2.0-only WITH Classpath-exception-2.0
//
// The package has two responsibilities:
//
//   - Normalize canonicalizes a raw license identifier into the form used
//     as compatibility-matrix keys (whitespace trimming, WITH casing,
//     "+" to "-or-later" expansion, legacy synonym mapping).
//   - Parse tokenizes and parses an expression string into an immutable
//     Expr tree of Leaf, And and Or nodes.
//
// # Error handling
//
// Neither function fails. Normalize returns unrecognized identifiers
// unchanged after basic cleanup. Parse is deliberately lenient: malformed
// input yields nil or a partial tree, never an error or a panic. Callers
// treat a nil tree as "expression not recognized" and degrade to an
// unknown verdict downstream.
//
// # Usage
//
//	expr := spdx.Parse("MIT OR Apache-2.0")
//	if expr == nil {
//	    // empty or unrecognizable input
//	}
package spdx
