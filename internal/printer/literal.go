package printer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

// RegexRenderer turns a regular expression literal into a spliceable item sub-stream.
type RegexRenderer func(pattern, flags string) []cst.Item

// DefaultRegex renders /pattern/flags as a RegExpLiteral structure.
func DefaultRegex(pattern, flags string) []cst.Item {
	if pattern == "" {
		pattern = "(?:)"
	}
	items := []cst.Item{cst.Open("RegExpLiteral"), cst.Punct("/"), cst.Lit(pattern), cst.Punct("/")}
	if flags != "" {
		items = append(items, cst.Lit(flags))
	}
	return append(items, cst.Close())
}

// EncodeLiteral renders the value of a Literal node.
func EncodeLiteral(n *estree.Literal, regex RegexRenderer) (items []cst.Item, err error) {
	defer catch(&err)
	if regex == nil {
		regex = DefaultRegex
	}
	return encodeLiteral(n, regex), nil
}

func encodeLiteral(n *estree.Literal, regex RegexRenderer) []cst.Item {
	switch {
	case n.Regex != nil:
		return regex(n.Regex.Pattern, n.Regex.Flags)
	case n.Bigint != "":
		return encodeBigInt(n.Bigint)
	}
	switch v := n.Value.(type) {
	case nil:
		return []cst.Item{cst.Word("null")}
	case bool:
		return []cst.Item{cst.Word(strconv.FormatBool(v))}
	case string:
		return EncodeString(v)
	case float64:
		return encodeNumber(v)
	case int:
		return encodeNumber(float64(v))
	case int64:
		return encodeNumber(float64(v))
	}
	fail(&UnsupportedLiteralKindError{Value: n.Value, Reason: "literal value"})
	return nil
}

// EncodeString renders s as a quoted string literal. Every escape is its own Escape structure.
func EncodeString(s string) []cst.Item {
	if s == "'" {
		return []cst.Item{cst.Open("StringLiteral"), cst.Punct(`"`), cst.Lit(s), cst.Punct(`"`), cst.Close()}
	}

	items := []cst.Item{cst.Open("StringLiteral"), cst.Punct("'")}
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			items = append(items, cst.Lit(run.String()))
			run.Reset()
		}
	}
	for _, r := range s {
		var esc []cst.Item
		switch {
		case r == '\\':
			esc = namedEscape(`\`)
		case r == '\'':
			esc = namedEscape(`'`)
		case r == '\r':
			esc = namedEscape("r")
		case r == '\n':
			esc = namedEscape("n")
		case r < 0x20:
			esc = []cst.Item{cst.Open("Escape"), cst.Punct(`\`), cst.Lit("u"), cst.Lit(fmt.Sprintf("%04x", r)), cst.Close()}
		default:
			run.WriteRune(r)
			continue
		}
		flush()
		items = append(items, esc...)
	}
	flush()
	return append(items, cst.Punct("'"), cst.Close())
}

func namedEscape(c string) []cst.Item {
	return []cst.Item{cst.Open("Escape"), cst.Punct(`\`), cst.Lit(c), cst.Close()}
}

func encodeBigInt(digits string) []cst.Item {
	return []cst.Item{cst.Open("BigIntLiteral"), cst.Lit(digits), cst.Lit("n"), cst.Close()}
}

// EncodeNumber renders a finite or infinite number.
func EncodeNumber(v float64) (items []cst.Item, err error) {
	defer catch(&err)
	return encodeNumber(v), nil
}

func encodeNumber(v float64) []cst.Item {
	switch {
	case math.IsNaN(v):
		fail(&UnsupportedLiteralKindError{Value: v, Reason: "NaN has no literal form"})
	case math.IsInf(v, 1):
		return []cst.Item{cst.Open("NumericLiteral"), cst.Punct("+"), cst.Word("Infinity"), cst.Close()}
	case math.IsInf(v, -1):
		return []cst.Item{cst.Open("NumericLiteral"), cst.Punct("-"), cst.Word("Infinity"), cst.Close()}
	}

	items := []cst.Item{cst.Open("NumericLiteral")}
	if v < 0 {
		items = append(items, cst.Punct("-"))
		v = -v
	}
	n := splitNumber(v)
	items = append(items, cst.Lit(n.integer))
	if n.fraction != "" {
		items = append(items, cst.Punct("."), cst.Lit(n.fraction))
	}
	if n.exponent != "" {
		items = append(items, cst.Lit("e"), cst.Punct(n.sign), cst.Lit(n.exponent))
	}
	return append(items, cst.Close())
}

func formatNumber(v float64) string {
	return cst.Text(encodeNumber(v))
}

type number struct {
	integer  string
	fraction string
	sign     string
	exponent string
}

// splitNumber applies the Number::toString rules to the shortest round-tripping digits of v (v >= 0).
func splitNumber(v float64) number {
	if v == 0 {
		return number{integer: "0"}
	}

	// d.ddde±x
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k, pos := len(digits), e+1

	switch {
	case k <= pos && pos <= 21:
		return number{integer: digits + strings.Repeat("0", pos-k)}
	case 0 < pos && pos <= 21:
		return number{integer: digits[:pos], fraction: digits[pos:]}
	case -6 < pos && pos <= 0:
		return number{integer: "0", fraction: strings.Repeat("0", -pos) + digits}
	}

	n := number{integer: digits[:1], fraction: digits[1:], sign: "+", exponent: strconv.Itoa(pos - 1)}
	if pos-1 < 0 {
		n.sign, n.exponent = "-", strconv.Itoa(1-pos)
	}
	return n
}
