package scan

import (
	"bufio"
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// spdxHeader extracts the expression from an SPDX-License-Identifier
// line. Trailing comment closers are stripped separately.
var spdxHeader = regexp.MustCompile(`SPDX-License-Identifier:\s*(.+)`)

// alwaysSkipDirs are directories never worth scanning regardless of
// ignore rules.
var alwaysSkipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// Config controls a tree scan.
type Config struct {
	// MaxHeaderBytes is how much of each file is read when looking for
	// a license header. Default: 4096.
	MaxHeaderBytes int

	// MaxFileSize skips files larger than this many bytes. Zero means
	// no limit.
	MaxFileSize int64

	// UseGitignore honors .gitignore patterns found at the tree root.
	UseGitignore bool

	// IncludeUndeclared reports files without a detectable license as
	// empty-string entries, so they surface as unknown-verdict issues
	// instead of being silently dropped.
	IncludeUndeclared bool

	// Extensions restricts scanning to the given file extensions (with
	// leading dot). Empty means all files.
	Extensions []string
}

// DefaultConfig returns the default scan configuration.
func DefaultConfig() Config {
	return Config{
		MaxHeaderBytes: 4096,
		MaxFileSize:    4 * 1024 * 1024,
		UseGitignore:   true,
	}
}

// Scanner collects declared licenses from a file tree.
type Scanner struct {
	config Config
	logger *slog.Logger
}

// NewScanner creates a scanner. A zero-valued config is replaced with
// defaults.
func NewScanner(config Config, logger *slog.Logger) *Scanner {
	if config.MaxHeaderBytes <= 0 {
		config.MaxHeaderBytes = DefaultConfig().MaxHeaderBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		config: config,
		logger: logger.With("component", "scan"),
	}
}

// Scan walks the tree rooted at root and returns a map of relative file
// path to detected SPDX expression. The walk stops early if ctx is
// canceled. Unreadable files are skipped with a debug log, never an
// error: a partial result is more useful than none.
func (s *Scanner) Scan(ctx context.Context, root string) (map[string]string, error) {
	matcher := s.loadGitignore(root)
	licenses := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if alwaysSkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if matcher != nil && (matcher.MatchesPath(rel) || matcher.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}
		if !s.wantExtension(path) {
			return nil
		}
		if s.config.MaxFileSize > 0 {
			if info, err := d.Info(); err == nil && info.Size() > s.config.MaxFileSize {
				return nil
			}
		}

		expr, found := s.detect(path)
		if found || s.config.IncludeUndeclared {
			licenses[filepath.ToSlash(rel)] = expr
		}
		return nil
	})
	if err != nil {
		return licenses, err
	}

	s.logger.Debug("scan complete", "root", root, "files", len(licenses))
	return licenses, nil
}

// loadGitignore compiles the root .gitignore if present and enabled.
func (s *Scanner) loadGitignore(root string) *ignore.GitIgnore {
	if !s.config.UseGitignore {
		return nil
	}
	matcher, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		// Absent or unreadable .gitignore just disables ignore matching.
		return nil
	}
	return matcher
}

// wantExtension reports whether the path passes the extension filter.
func (s *Scanner) wantExtension(path string) bool {
	if len(s.config.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range s.config.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// detect reads the file header and extracts the SPDX expression, if any.
func (s *Scanner) detect(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Debug("skipping unreadable file", "path", path, "error", err)
		return "", false
	}
	defer f.Close()

	header := make([]byte, s.config.MaxHeaderBytes)
	n, _ := f.Read(header)
	header = header[:n]

	// Binary files have no license headers.
	if bytes.IndexByte(header, 0) >= 0 {
		return "", false
	}

	scanner := bufio.NewScanner(bytes.NewReader(header))
	for scanner.Scan() {
		m := spdxHeader.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		return cleanHeaderExpr(m[1]), true
	}
	return "", false
}

// cleanHeaderExpr strips comment closers and surrounding noise from an
// extracted header expression.
func cleanHeaderExpr(expr string) string {
	expr = strings.TrimSpace(expr)
	for _, closer := range []string{"*/", "-->", "#>"} {
		if idx := strings.Index(expr, closer); idx >= 0 {
			expr = strings.TrimSpace(expr[:idx])
		}
	}
	return expr
}
