package config

import "sync"

var (
	globalMu     sync.RWMutex
	globalConfig *Config
	initOnce     sync.Once
)

// Initialize loads configuration from the given path and stores it as
// the process-wide singleton. Subsequent calls are ignored.
func Initialize(path string) error {
	var initErr error
	initOnce.Do(func() {
		cfg, err := Load(path)
		if err != nil {
			initErr = err
			return
		}
		globalMu.Lock()
		globalConfig = cfg
		globalMu.Unlock()
	})
	return initErr
}

// Get returns the process-wide configuration, or nil if Initialize has
// not run successfully. Prefer passing explicit Config values in tests.
func Get() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// Set replaces the process-wide configuration. Intended for tests.
func Set(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}
