// Package engine evaluates parsed SPDX license expressions against the
// compatibility matrix and produces per-file compatibility issues.
//
// # Overview
//
// The engine has two layers:
//
//   - Evaluator walks an expression tree and combines per-leaf matrix
//     lookups with tri-state truth tables (conservative AND, optimistic
//     OR), accumulating a human-readable derivation trace.
//   - Checker orchestrates a whole check: it normalizes the main
//     license, short-circuits degenerate inputs, and parses and
//     evaluates one expression per file.
//
// # Truth tables
//
// AND is conservative: No dominates, Yes AND Yes is Yes, and every other
// combination (anything involving Conditional or Unknown) is
// Conditional. OR is optimistic: Yes dominates, No OR No is No, and
// everything else is Conditional.
//
// Conjunctions additionally produce advisory cross-compatibility checks:
// every leaf symbol on the left side is looked up against every leaf
// symbol on the right side, and the results are appended to the trace.
// These lines surface potential conflicts between the combined license
// families but never alter the returned verdict.
//
// # Error handling
//
// Nothing in this package returns an error or panics for malformed
// input. Unparseable expressions evaluate to an unknown verdict, a
// missing matrix row degrades to a labeled "not compatible" issue, and
// every input file always receives exactly one issue record.
package engine
