// Package scan walks a local file tree and collects declared licenses
// per file, producing the {file path → SPDX expression} map consumed by
// the compatibility checker.
//
// Detection is header-based: the scanner reads the leading bytes of each
// file and extracts the expression from an "SPDX-License-Identifier:"
// line. Files without such a line are reported with an empty expression
// only when IncludeUndeclared is set. VCS and dependency directories are
// always skipped, and .gitignore patterns are honored when present.
package scan
