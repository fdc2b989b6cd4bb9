// Package logging wraps log/slog with licensegate's level and format
// conventions. Commands create one logger at startup and install it as
// the process default so library packages can log through slog.Default.
package logging
