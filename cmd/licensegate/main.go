// Licensegate checks a codebase's per-file license declarations against
// a project's main license using a configurable compatibility matrix.
//
// It scans a file tree (or a freshly cloned Git repository) for
// SPDX-License-Identifier headers, parses each declaration as an SPDX
// license expression, and evaluates it against the main license with a
// tri-state verdict (yes, no, conditional, unknown).
//
// Usage:
//
//	# Check the current directory against MIT
//	licensegate check --main-license MIT
//
//	# Check a remote repository
//	licensegate check --repo https://github.com/example/project --main-license Apache-2.0
//
//	# Validate a compatibility matrix source
//	licensegate matrix validate --file matrix.yaml
//
//	# Watch mode: re-check on matrix changes, serve metrics
//	licensegate watch ./src --main-license MIT
//
//	# Show version information
//	licensegate version
package main

func main() {
	Execute()
}
