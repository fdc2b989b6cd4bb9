package spdx

import "strings"

// Parse tokenizes and parses an SPDX-style boolean license expression
// into an Expr tree. AND binds tighter than OR, both operators are
// left-associative, and keywords are matched case-insensitively.
//
// Parse never returns an error and never panics. Empty or whitespace-only
// input returns nil. A missing closing parenthesis is tolerated: the
// parser consumes what it can and returns the partial subtree. Callers
// treat nil as "expression not recognized".
func Parse(expr string) Expr {
	tokens := tokenize(expr)
	if len(tokens) == 0 {
		return nil
	}
	p := &parser{tokens: tokens}
	return p.parseOr()
}

// tokenize splits an expression into tokens. Parentheses are always
// their own tokens; any whitespace run separates tokens without
// producing one; every other run of characters forms a single token.
// A post-pass collapses the triple <X> WITH <Y> into the single token
// "X WITH Y" so that exception clauses travel with their base license.
func tokenize(expr string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range expr {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return collapseWith(tokens)
}

// collapseWith merges X, WITH, Y token triples into "X WITH Y". On a
// match the scan advances by three tokens, otherwise by one.
func collapseWith(tokens []string) []string {
	var out []string
	i := 0
	for i < len(tokens) {
		if i+2 < len(tokens) && strings.EqualFold(tokens[i+1], "WITH") {
			out = append(out, tokens[i]+" WITH "+tokens[i+2])
			i += 3
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

// parser is a recursive-descent parser over a token slice with two
// precedence levels (OR below AND).
type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// parseOr := parseAnd ( "OR" parseAnd )*
func (p *parser) parseOr() Expr {
	left := p.parseAnd()
	if left == nil {
		return nil
	}
	for {
		tok, ok := p.peek()
		if !ok || !strings.EqualFold(tok, "OR") {
			return left
		}
		p.pos++
		right := p.parseAnd()
		if right == nil {
			return left
		}
		left = Or{Left: left, Right: right}
	}
}

// parseAnd := parsePrimary ( "AND" parsePrimary )*
func (p *parser) parseAnd() Expr {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}
	for {
		tok, ok := p.peek()
		if !ok || !strings.EqualFold(tok, "AND") {
			return left
		}
		p.pos++
		right := p.parsePrimary()
		if right == nil {
			return left
		}
		left = And{Left: left, Right: right}
	}
}

// parsePrimary := "(" parseOr ")" | LEAF_TOKEN
//
// A leaf token is normalized at construction time. An unbalanced "("
// does not fail: the inner expression is returned as-is and a missing
// ")" is simply not consumed.
func (p *parser) parsePrimary() Expr {
	tok, ok := p.next()
	if !ok {
		return nil
	}
	if tok == "(" {
		inner := p.parseOr()
		if closing, ok := p.peek(); ok && closing == ")" {
			p.pos++
		}
		return inner
	}
	if tok == ")" {
		return nil
	}
	return Leaf{Value: Normalize(tok)}
}
