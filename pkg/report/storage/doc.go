// Package storage provides report persistence backends: SQLite for
// durable history and an in-memory map for tests.
package storage
