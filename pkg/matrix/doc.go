// Package matrix provides the license compatibility matrix: a static
// lookup table mapping (main license, dependency license) pairs to a
// tri-state verdict.
//
// # Overview
//
// The matrix is loaded once per process from a YAML or JSON source
// (YAML being a superset of JSON, both parse with the same decoder) and
// is immutable afterwards. Three equivalent on-disk shapes are accepted
// and normalized into the uniform main → dep → TriState structure:
//
//	# shape (a): nested mapping
//	matrix:
//	  MIT:
//	    Apache-2.0: yes
//
//	# shape (b): top-level list
//	- name: MIT
//	  compatibilities:
//	    - name: Apache-2.0
//	      compatibility: yes
//
//	# shape (c): list under a "licenses" key
//	licenses:
//	  - name: MIT
//	    compatibilities: [...]
//
// Rows that are not mappings or lack a name are silently skipped; an
// absent or unparseable source yields an empty matrix rather than an
// error. All keys are normalized with spdx.Normalize before insertion.
//
// # Process-wide cache
//
// Default returns a lazily initialized, once-guarded singleton. After
// initialization the matrix is read-only and safe to share across
// goroutines without locking. Invalidate is the only permitted mutation:
// it drops the cache so the next Default call reloads from source.
package matrix
