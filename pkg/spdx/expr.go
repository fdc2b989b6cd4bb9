package spdx

import "strings"

// Expr is a node in a parsed SPDX license expression tree.
//
// The tree is a closed sum of three variants: Leaf, And and Or. Nodes are
// immutable after construction and owned exclusively by the caller that
// parsed the expression; there is no shared state between trees, so
// concurrent evaluation of distinct trees needs no synchronization.
type Expr interface {
	// isExpr restricts implementations to this package.
	isExpr()
}

// Leaf is a single license symbol. The value may embed an exception
// clause in the form "<base> WITH <exception>"; the literal text is
// stored as-is and split only at evaluation time.
type Leaf struct {
	Value string
}

// And is the conjunction of two subexpressions.
type And struct {
	Left  Expr
	Right Expr
}

// Or is the disjunction of two subexpressions.
type Or struct {
	Left  Expr
	Right Expr
}

func (Leaf) isExpr() {}
func (And) isExpr()  {}
func (Or) isExpr()   {}

// String renders the expression in SPDX syntax, parenthesizing nested
// operator nodes. Intended for logs and derivation traces.
func (l Leaf) String() string { return l.Value }

func (a And) String() string {
	return exprString(a.Left) + " AND " + exprString(a.Right)
}

func (o Or) String() string {
	return exprString(o.Left) + " OR " + exprString(o.Right)
}

func exprString(e Expr) string {
	switch n := e.(type) {
	case Leaf:
		return n.Value
	case And:
		return "(" + n.String() + ")"
	case Or:
		return "(" + n.String() + ")"
	default:
		return ""
	}
}

// Leaves returns all leaf symbols reachable under e, left to right and
// depth first, with any WITH exception clause stripped to just the
// normalized base symbol. A nil expression yields no symbols.
func Leaves(e Expr) []string {
	var out []string
	collectLeaves(e, &out)
	return out
}

func collectLeaves(e Expr, out *[]string) {
	switch n := e.(type) {
	case Leaf:
		base, _, _ := strings.Cut(n.Value, " WITH ")
		*out = append(*out, Normalize(base))
	case And:
		collectLeaves(n.Left, out)
		collectLeaves(n.Right, out)
	case Or:
		collectLeaves(n.Left, out)
		collectLeaves(n.Right, out)
	}
}
