package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"compat-hq/licensegate/pkg/matrix"
	"compat-hq/licensegate/pkg/spdx"
)

// CombineAnd combines two verdicts under conjunction. It is
// conservative: No dominates, Yes AND Yes is Yes, and every other
// combination is Conditional.
func CombineAnd(a, b matrix.TriState) matrix.TriState {
	if a == matrix.No || b == matrix.No {
		return matrix.No
	}
	if a == matrix.Yes && b == matrix.Yes {
		return matrix.Yes
	}
	return matrix.Conditional
}

// CombineOr combines two verdicts under disjunction. It is optimistic:
// Yes dominates, No OR No is No, and every other combination is
// Conditional.
func CombineOr(a, b matrix.TriState) matrix.TriState {
	if a == matrix.Yes || b == matrix.Yes {
		return matrix.Yes
	}
	if a == matrix.No && b == matrix.No {
		return matrix.No
	}
	return matrix.Conditional
}

// Evaluator walks an expression tree against a compatibility matrix for
// one main license. It is stateless between calls and safe for
// concurrent use; the matrix it holds is read-only.
type Evaluator struct {
	matrix matrix.Matrix
	logger *slog.Logger
}

// NewEvaluator creates an evaluator over the given matrix.
func NewEvaluator(m matrix.Matrix, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		matrix: m,
		logger: logger.With("component", "engine.evaluator"),
	}
}

// Evaluate computes the verdict for node against the main license and
// returns it together with the derivation trace. A nil node evaluates
// to Unknown. Evaluate never fails.
func (e *Evaluator) Evaluate(main string, node spdx.Expr) (matrix.TriState, []string) {
	if node == nil {
		return matrix.Unknown, []string{"Missing expression or not recognized"}
	}

	switch n := node.(type) {
	case spdx.Leaf:
		return e.evalLeaf(main, n)

	case spdx.And:
		ls, ltrace := e.Evaluate(main, n.Left)
		rs, rtrace := e.Evaluate(main, n.Right)
		combined := CombineAnd(ls, rs)

		trace := append(ltrace, rtrace...)
		trace = append(trace, e.crossChecks(n.Left, n.Right)...)
		return combined, trace

	case spdx.Or:
		ls, ltrace := e.Evaluate(main, n.Left)
		rs, rtrace := e.Evaluate(main, n.Right)
		combined := CombineOr(ls, rs)

		trace := append(ltrace, rtrace...)
		trace = append(trace, fmt.Sprintf("OR ⇒ %s", combined))
		return combined, trace

	default:
		// The Expr sum is closed, but keep the conservative fallback for
		// hypothetical future variants.
		return matrix.Unknown, []string{"Unrecognized node"}
	}
}

// evalLeaf evaluates a single license symbol, splitting off any WITH
// exception clause. The exception is advisory only: it is reported in
// the trace but never changes the computed status.
func (e *Evaluator) evalLeaf(main string, leaf spdx.Leaf) (matrix.TriState, []string) {
	base, exception, found := strings.Cut(leaf.Value, " WITH ")
	if !found {
		status := e.matrix.Lookup(main, leaf.Value)
		return status, []string{
			fmt.Sprintf("License %s against %s: %s", leaf.Value, main, status),
		}
	}

	base = spdx.Normalize(base)
	status := e.matrix.Lookup(main, base)
	trace := []string{
		fmt.Sprintf("License %s against %s: %s", base, main, status),
	}

	if exception != "" {
		if status != matrix.Yes {
			trace = append(trace, fmt.Sprintf(
				"Exception %s present: manual verification required", exception))
		} else {
			trace = append(trace, fmt.Sprintf(
				"Exception %s detected: verify its impact manually", exception))
		}
	}
	return status, trace
}

// crossChecks performs the advisory pairwise lookups between the leaf
// symbols of the two operands of a conjunction, left-to-right and
// depth-first. The results only inform the trace.
func (e *Evaluator) crossChecks(left, right spdx.Expr) []string {
	leftLeaves := spdx.Leaves(left)
	rightLeaves := spdx.Leaves(right)

	var lines []string
	for _, l := range leftLeaves {
		for _, r := range rightLeaves {
			status := e.matrix.Lookup(l, r)
			lines = append(lines, fmt.Sprintf("Cross-check %s against %s: %s", l, r, status))
		}
	}
	return lines
}
