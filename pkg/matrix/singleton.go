package matrix

import (
	"log/slog"
	"sync"
)

var (
	// globalMu protects the cached matrix and source path.
	globalMu sync.RWMutex

	// globalMatrix holds the process-wide matrix instance.
	globalMatrix Matrix

	// globalLoaded records whether a load has been attempted. A failed
	// load still counts as loaded: the empty matrix is cached so every
	// caller sees the same degraded-but-usable state instead of
	// re-reading a broken source on each check.
	globalLoaded bool

	// globalSource is the path the singleton loads from.
	globalSource string
)

// SetSource sets the file path the process-wide matrix is loaded from.
// It must be called before the first Default call; changing the source
// afterwards requires Invalidate to take effect.
func SetSource(path string) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalSource = path
}

// Default returns the process-wide compatibility matrix, loading it from
// the configured source on first call. Concurrent first-time callers are
// serialized; after initialization the matrix is read-only and shared
// without locking. A missing or corrupt source yields an empty matrix.
func Default() Matrix {
	globalMu.RLock()
	if globalLoaded {
		m := globalMatrix
		globalMu.RUnlock()
		return m
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLoaded {
		return globalMatrix
	}

	m, err := LoadFile(globalSource)
	if err != nil {
		slog.Default().Warn("compatibility matrix unavailable",
			"source", globalSource,
			"error", err,
		)
	}
	globalMatrix = m
	globalLoaded = true
	return globalMatrix
}

// Invalidate drops the cached matrix so the next Default call reloads
// from source. This is the only permitted mutation of the singleton; it
// exists for matrix hot-reload (for example on a file-change event).
func Invalidate() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMatrix = nil
	globalLoaded = false
}

// Set replaces the cached matrix directly. Primarily intended for tests;
// production code should rely on SetSource and Default.
func Set(m Matrix) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMatrix = m
	globalLoaded = true
}
