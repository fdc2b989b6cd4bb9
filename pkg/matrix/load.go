package matrix

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"compat-hq/licensegate/pkg/spdx"
)

// LoadError describes a matrix source that could not be read or decoded
// at the byte level. Partially malformed but decodable sources do not
// produce a LoadError; their invalid rows are skipped instead.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("matrix source %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile loads a compatibility matrix from a YAML or JSON file. A
// missing or unreadable file returns an empty matrix together with a
// *LoadError the caller may log; the empty matrix is still usable and
// degrades every check to "matrix not available".
func LoadFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return Matrix{}, &LoadError{Source: path, Err: err}
	}
	return m, nil
}

// Load decodes a compatibility matrix from r, accepting any of the
// three supported source shapes (see the package documentation). Rows
// and entries that are not mappings or lack a name are skipped; the
// returned matrix contains whatever valid entries could be extracted.
func Load(r io.Reader) (Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Matrix{}, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Matrix{}, err
	}

	switch v := doc.(type) {
	case map[string]any:
		if nested, ok := v["matrix"].(map[string]any); ok {
			return fromNested(nested), nil
		}
		if list, ok := v["licenses"].([]any); ok {
			return fromList(list), nil
		}
		return Matrix{}, nil
	case []any:
		return fromList(v), nil
	default:
		return Matrix{}, nil
	}
}

// fromNested normalizes shape (a): {main: {dep: status}}.
func fromNested(nested map[string]any) Matrix {
	m := Matrix{}
	for main, rawRow := range nested {
		deps, ok := rawRow.(map[string]any)
		if !ok {
			continue
		}
		row := Row{}
		for dep, status := range deps {
			row[spdx.Normalize(dep)] = CoerceStatus(status)
		}
		m[spdx.Normalize(main)] = row
	}
	return m
}

// fromList normalizes shapes (b) and (c): a list of
// {name, compatibilities: [{name, compatibility|status}]} entries.
func fromList(list []any) Matrix {
	m := Matrix{}
	for _, rawEntry := range list {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			continue
		}
		main, ok := entry["name"].(string)
		if !ok || main == "" {
			continue
		}

		row := Row{}
		compat, _ := entry["compatibilities"].([]any)
		for _, rawDep := range compat {
			dep, ok := rawDep.(map[string]any)
			if !ok {
				continue
			}
			name, ok := dep["name"].(string)
			if !ok || name == "" {
				continue
			}
			status, ok := dep["compatibility"]
			if !ok {
				status = dep["status"]
			}
			row[spdx.Normalize(name)] = CoerceStatus(status)
		}
		m[spdx.Normalize(main)] = row
	}
	return m
}
