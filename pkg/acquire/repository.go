package acquire

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CloneOptions controls how a repository is fetched.
type CloneOptions struct {
	// Ref is the branch or tag to check out. Empty means the remote
	// default branch.
	Ref string

	// Depth limits history depth. Scanning only needs the worktree, so
	// the default is a shallow clone of depth 1.
	Depth int

	// Timeout bounds the whole clone. Default: 5 minutes.
	Timeout time.Duration
}

// DefaultCloneOptions returns the default clone options.
func DefaultCloneOptions() CloneOptions {
	return CloneOptions{Depth: 1, Timeout: 5 * time.Minute}
}

// Clone fetches the repository at url into a fresh temporary directory
// and returns the local path together with a cleanup function that
// removes it. The caller must invoke cleanup when done with the tree.
func Clone(ctx context.Context, url string, opts CloneOptions) (string, func(), error) {
	if strings.TrimSpace(url) == "" {
		return "", nil, fmt.Errorf("repository URL cannot be empty")
	}
	if opts.Depth <= 0 {
		opts.Depth = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCloneOptions().Timeout
	}

	dir, err := os.MkdirTemp("", "licensegate-repo-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create clone directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	cloneCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	cloneOpts := &gogit.CloneOptions{
		URL:          url,
		Depth:        opts.Depth,
		SingleBranch: true,
	}
	if opts.Ref != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Ref)
	}

	start := time.Now()
	_, err = gogit.PlainCloneContext(cloneCtx, dir, false, cloneOpts)
	if err != nil && opts.Ref != "" {
		// The ref may be a tag rather than a branch; retry once.
		cloneOpts.ReferenceName = plumbing.NewTagReferenceName(opts.Ref)
		_, err = gogit.PlainCloneContext(cloneCtx, dir, false, cloneOpts)
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to clone %q: %w", url, err)
	}

	slog.Default().Debug("repository cloned",
		"url", url,
		"ref", opts.Ref,
		"duration", time.Since(start),
	)
	return dir, cleanup, nil
}
