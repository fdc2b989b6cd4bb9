// Package config loads and validates licensegate configuration.
//
// Configuration is YAML-based with environment variable overrides
// (LICENSEGATE_SECTION_FIELD, e.g. LICENSEGATE_MATRIX_PATH). Loading
// applies defaults first, then file values, then environment overrides,
// and validates the final result. A process-wide singleton accessor is
// provided for commands; tests should inject explicit Config values
// instead.
package config
