package spdx

import (
	"regexp"
	"strings"
)

// withToken matches the word "with" in any casing when surrounded by
// whitespace. The surrounding whitespace is preserved on rewrite.
var withToken = regexp.MustCompile(`(?i)(\s)with(\s)`)

// synonyms maps known legacy license identifiers to their canonical SPDX
// form. Lookup is exact-string and case-sensitive, and only applies after
// whitespace, WITH and "+" normalization. The "+"-suffixed keys largely
// exist for parity with pre-expanded legacy data; most inputs containing
// "+" are already rewritten to "-or-later" by the step before.
var synonyms = map[string]string{
	"GPL-1.0+":  "GPL-1.0-or-later",
	"GPL-2.0+":  "GPL-2.0-or-later",
	"GPL-3.0+":  "GPL-3.0-or-later",
	"LGPL-2.0+": "LGPL-2.0-or-later",
	"LGPL-2.1+": "LGPL-2.1-or-later",
	"LGPL-3.0+": "LGPL-3.0-or-later",
	"AGPL-3.0+": "AGPL-3.0-or-later",
}

// Normalize canonicalizes a raw license identifier string into the form
// used as compatibility-matrix keys.
//
// The steps, in order:
//
//  1. Trim leading and trailing whitespace. An empty string stays empty.
//  2. Rewrite any case-insensitive occurrence of the word "with"
//     surrounded by whitespace to the exact token "WITH".
//  3. If the string contains "+" and does not already contain
//     "-or-later", replace every "+" with "-or-later". This is a literal
//     substring replace: unusual inputs with repeated "+" characters get
//     each occurrence expanded independently.
//  4. Map known legacy forms to canonical SPDX identifiers via an exact
//     synonym table.
//
// Normalize never fails; unrecognized identifiers are returned unchanged
// after the cleanup steps. It is idempotent: Normalize(Normalize(s)) is
// always Normalize(s).
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = withToken.ReplaceAllString(s, "${1}WITH${2}")

	if strings.Contains(s, "+") && !strings.Contains(s, "-or-later") {
		s = strings.ReplaceAll(s, "+", "-or-later")
	}

	if canonical, ok := synonyms[s]; ok {
		return canonical
	}
	return s
}
