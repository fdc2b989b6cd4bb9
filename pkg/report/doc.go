// Package report defines persisted compatibility-check reports.
//
// The compatibility engine itself never stores anything; a Report wraps
// one engine.Result with an identity and timestamps so the CLI can keep
// a history of checks. Persistence backends live in the storage
// subpackage and retention enforcement in the retention subpackage.
package report
