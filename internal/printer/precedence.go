package printer

import (
	"math"

	"github.com/cmmoran/cstgen/pkg/estree"
)

// Group is the coarse binding strength of a node type. Higher binds tighter.
type Group int

const (
	GroupSequence    Group = 1
	GroupAssignment  Group = 3 // assignment, arrow, yield, spread and default-value positions
	GroupConditional Group = 4
	GroupBinary      Group = 14 // binary and logical expressions; ordered further by OperatorPrecedence
	GroupUnary       Group = 15
	GroupUpdate      Group = 16
	GroupCall        Group = 19 // member access, calls, new, tagged templates
	GroupPrimary     Group = 20
)

// GroupOf returns the group precedence of n. Types outside the supported expression set abort.
func GroupOf(n estree.Node) Group {
	switch n := n.(type) {
	case *estree.Identifier, *estree.PrivateIdentifier, *estree.ThisExpression, *estree.Super,
		*estree.ArrayExpression, *estree.ArrayPattern, *estree.ObjectExpression, *estree.ObjectPattern,
		*estree.FunctionExpression, *estree.ClassExpression, *estree.TemplateLiteral, *estree.MetaProperty:
		return GroupPrimary
	case *estree.Literal:
		if unaryLiteral(n) {
			return GroupUnary
		}
		return GroupPrimary
	case *estree.MemberExpression, *estree.CallExpression, *estree.NewExpression,
		*estree.TaggedTemplateExpression, *estree.ChainExpression, *estree.ImportExpression,
		*estree.TSNonNullExpression:
		return GroupCall
	case *estree.UpdateExpression:
		return GroupUpdate
	case *estree.UnaryExpression, *estree.AwaitExpression:
		return GroupUnary
	case *estree.BinaryExpression, *estree.LogicalExpression:
		return GroupBinary
	case *estree.ConditionalExpression:
		return GroupConditional
	case *estree.AssignmentExpression, *estree.ArrowFunctionExpression, *estree.YieldExpression,
		*estree.AssignmentPattern, *estree.SpreadElement, *estree.RestElement:
		return GroupAssignment
	case *estree.SequenceExpression:
		return GroupSequence
	}
	unsupported(n, "precedence group")
	return 0
}

// unaryLiteral reports numeric literals whose rendering starts with a sign.
func unaryLiteral(n *estree.Literal) bool {
	v, ok := n.Value.(float64)
	if !ok || n.Regex != nil || n.Bigint != "" {
		return false
	}
	return v < 0 || math.IsInf(v, 0)
}

// OperatorPrecedence ranks binary and logical operators, lowest first.
func OperatorPrecedence(op string) int {
	switch op {
	case "||":
		return 1
	case "&&":
		return 2
	case "??":
		return 3
	case "|":
		return 4
	case "^":
		return 5
	case "&":
		return 6
	case "==", "!=", "===", "!==":
		return 7
	case "<", ">", "<=", ">=", "in", "instanceof":
		return 8
	case "<<", ">>", ">>>":
		return 9
	case "+", "-":
		return 10
	case "*", "/", "%":
		return 11
	case "**":
		return 12
	}
	fail(&UnsupportedNodeTypeError{Type: "operator " + op, Context: "binary precedence"})
	return 0
}

func binaryOperator(n estree.Node) (string, bool) {
	switch n := n.(type) {
	case *estree.BinaryExpression:
		return n.Operator, true
	case *estree.LogicalExpression:
		return n.Operator, true
	}
	return "", false
}

// mixesNullish reports `??` next to `||` or `&&`, which the grammar refuses without parentheses.
func mixesNullish(a, b string) bool {
	logical := func(op string) bool { return op == "||" || op == "&&" }
	return (a == "??" && logical(b)) || (b == "??" && logical(a))
}

// needsParens decides whether child, appearing as an operand of parent, must be parenthesized. right is
// true when child is the right (or only trailing) operand.
func needsParens(child, parent estree.Node, right bool) bool {
	if child.Type() == estree.KindPrivateIdentifier {
		return false
	}

	cop, childBinary := binaryOperator(child)
	pop, parentBinary := binaryOperator(parent)
	if childBinary && parentBinary && mixesNullish(cop, pop) {
		return true
	}

	cg, pg := GroupOf(child), GroupOf(parent)
	if cg != pg {
		if !right && parentBinary && pop == "**" && cg == GroupUnary {
			return true
		}
		return cg < pg
	}

	if !childBinary || !parentBinary {
		// conditionals are right-associative: a nested conditional in test position keeps its parentheses
		return !right && pg == GroupConditional
	}

	if pop == "**" && cop == "**" {
		return !right
	}

	cp, pp := OperatorPrecedence(cop), OperatorPrecedence(pop)
	if right {
		return cp <= pp
	}
	return cp < pp
}

// NeedsParens is needsParens for callers outside a print call; unsupported types are returned as errors.
func NeedsParens(child, parent estree.Node, right bool) (wrap bool, err error) {
	defer catch(&err)
	return needsParens(child, parent, right), nil
}
