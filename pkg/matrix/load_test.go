package matrix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_NestedShape(t *testing.T) {
	src := `{"matrix": {"MIT": {"Apache-2.0": "yes", "GPL-3.0-only": "no", "LGPL-2.1-only": "conditional"}}}`

	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !m.HasMain("MIT") {
		t.Fatal("missing row for MIT")
	}
	if got := m.Lookup("MIT", "Apache-2.0"); got != Yes {
		t.Errorf("Lookup(MIT, Apache-2.0) = %v, want Yes", got)
	}
	if got := m.Lookup("MIT", "GPL-3.0-only"); got != No {
		t.Errorf("Lookup(MIT, GPL-3.0-only) = %v, want No", got)
	}
	if got := m.Lookup("MIT", "LGPL-2.1-only"); got != Conditional {
		t.Errorf("Lookup(MIT, LGPL-2.1-only) = %v, want Conditional", got)
	}
}

func TestLoad_ListShape(t *testing.T) {
	src := `
- name: MIT
  compatibilities:
    - name: Apache-2.0
      compatibility: yes
    - name: GPL-3.0-only
      status: no
`
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := m.Lookup("MIT", "Apache-2.0"); got != Yes {
		t.Errorf("Lookup(MIT, Apache-2.0) = %v, want Yes", got)
	}
	// "status" is accepted as an alternative to "compatibility".
	if got := m.Lookup("MIT", "GPL-3.0-only"); got != No {
		t.Errorf("Lookup(MIT, GPL-3.0-only) = %v, want No", got)
	}
}

func TestLoad_LicensesShape(t *testing.T) {
	src := `
licenses:
  - name: Apache-2.0
    compatibilities:
      - name: MIT
        compatibility: same
`
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := m.Lookup("Apache-2.0", "MIT"); got != Yes {
		t.Errorf("Lookup(Apache-2.0, MIT) = %v, want Yes", got)
	}
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	src := `
- name: MIT
  compatibilities:
    - name: Apache-2.0
      compatibility: yes
    - "not a mapping"
    - compatibility: yes
- "also not a mapping"
- compatibilities: []
`
	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(m) != 1 {
		t.Errorf("len(matrix) = %d, want 1", len(m))
	}
	row := m["MIT"]
	if len(row) != 1 {
		t.Errorf("len(row) = %d, want 1", len(row))
	}
}

func TestLoad_NormalizesKeys(t *testing.T) {
	src := `{"matrix": {"  MIT ": {"GPL-3.0+": "no"}}}`

	m, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !m.HasMain("MIT") {
		t.Error("main key was not normalized")
	}
	if got := m.Lookup("MIT", "GPL-3.0-or-later"); got != No {
		t.Errorf("Lookup(MIT, GPL-3.0-or-later) = %v, want No", got)
	}
}

func TestLoad_UnrecognizedTopLevel(t *testing.T) {
	for _, src := range []string{`"just a string"`, `42`, `{"unrelated": true}`} {
		m, err := Load(strings.NewReader(src))
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", src, err)
		}
		if !m.Empty() {
			t.Errorf("Load(%q) = %v, want empty matrix", src, m)
		}
	}
}

func TestLoad_Unparseable(t *testing.T) {
	_, err := Load(strings.NewReader("{не yaml: [[["))
	if err == nil {
		t.Fatal("Load() with corrupt source should return an error")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	m, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFile() on a missing file should return a LoadError")
	}
	if !m.Empty() {
		t.Errorf("matrix = %v, want empty", m)
	}
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	src := "matrix:\n  MIT:\n    Apache-2.0: yes\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if got := m.Lookup("MIT", "Apache-2.0"); got != Yes {
		t.Errorf("Lookup(MIT, Apache-2.0) = %v, want Yes", got)
	}
}

func TestLookup_FallbackChain(t *testing.T) {
	m := Matrix{
		"MIT": Row{
			"GPL-3.0-or-later": No,
			"Apache-2.0":       Yes,
		},
	}

	// Raw hit.
	if got := m.Lookup("MIT", "Apache-2.0"); got != Yes {
		t.Errorf("raw lookup = %v, want Yes", got)
	}
	// Normalized fallback: "GPL-3.0+" normalizes to "GPL-3.0-or-later".
	if got := m.Lookup("MIT", "GPL-3.0+"); got != No {
		t.Errorf("normalized lookup = %v, want No", got)
	}
	// Trimmed fallback.
	if got := m.Lookup("MIT", "  Apache-2.0  "); got != Yes {
		t.Errorf("trimmed lookup = %v, want Yes", got)
	}
	// Missing entry.
	if got := m.Lookup("MIT", "WTFPL"); got != Unknown {
		t.Errorf("missing entry = %v, want Unknown", got)
	}
	// Missing row.
	if got := m.Lookup("BSL-1.0", "MIT"); got != Unknown {
		t.Errorf("missing row = %v, want Unknown", got)
	}
}
