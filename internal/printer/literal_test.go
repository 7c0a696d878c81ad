package printer

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/cstgen/pkg/cst"
	"github.com/cmmoran/cstgen/pkg/estree"
)

func TestEncodeString(ttt *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "abc", want: `'abc'`},
		{name: "empty", value: "", want: `''`},
		{name: "lone single quote", value: "'", want: `"'"`},
		{name: "double quote", value: `say "hi"`, want: `'say "hi"'`},
		{name: "single quote inside", value: "it's", want: `'it\'s'`},
		{name: "backslash", value: `a\b`, want: `'a\\b'`},
		{name: "newline and carriage return", value: "a\r\nb", want: `'a\r\nb'`},
		{name: "tab", value: "\t", want: `'\u0009'`},
		{name: "nul", value: "\x00", want: `'\u0000'`},
		{name: "unit separator", value: "\x1f", want: `'\u001f'`},
		{name: "non ascii", value: "héllo ☃", want: `'héllo ☃'`},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items := EncodeString(tt.value)
			require.Equal(t, tt.want, cst.Text(items))
			_, err := cst.Build("File", items)
			require.NoError(t, err)
		})
	}

	ttt.Run("every control character escapes", func(t *testing.T) {
		for r := rune(0); r < 0x20; r++ {
			got := cst.Text(EncodeString(string(r)))
			want := fmt.Sprintf(`'\u%04x'`, r)
			switch r {
			case '\n':
				want = `'\n'`
			case '\r':
				want = `'\r'`
			}
			require.Equalf(t, want, got, "rune %#x", r)
		}
	})

	ttt.Run("escapes are separate structures", func(t *testing.T) {
		root, err := cst.Build("File", EncodeString("a'b\n"))
		require.NoError(t, err)
		esc := root.Find("Escape")
		require.Len(t, esc, 2)
		require.Equal(t, `\'`, esc[0].Text())
		require.Equal(t, `\n`, esc[1].Text())
	})
}

func TestEncodeNumber(ttt *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "0"},
		{name: "negative zero", value: math.Copysign(0, -1), want: "0"},
		{name: "integer", value: 100, want: "100"},
		{name: "fraction", value: 1.5, want: "1.5"},
		{name: "tenth", value: 0.1, want: "0.1"},
		{name: "small fraction", value: 0.000001, want: "0.000001"},
		{name: "tiny", value: 1e-7, want: "1e-7"},
		{name: "tiny with digits", value: 1.25e-10, want: "1.25e-10"},
		{name: "large integer", value: 123456789012345680000, want: "123456789012345680000"},
		{name: "huge", value: 1e21, want: "1e+21"},
		{name: "huge with digits", value: 2.5e300, want: "2.5e+300"},
		{name: "negative", value: -42.5, want: "-42.5"},
		{name: "max safe integer", value: 9007199254740991, want: "9007199254740991"},
		{name: "infinity", value: math.Inf(1), want: "+Infinity"},
		{name: "negative infinity", value: math.Inf(-1), want: "-Infinity"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items, err := EncodeNumber(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, cst.Text(items))
		})
	}

	ttt.Run("infinity is a keyword", func(t *testing.T) {
		items, err := EncodeNumber(math.Inf(-1))
		require.NoError(t, err)
		root, err := cst.Build("File", items)
		require.NoError(t, err)
		require.Equal(t, []cst.Token{{Kind: cst.Punctuator, Text: "-"}, {Kind: cst.Keyword, Text: "Infinity"}}, root.Tokens())
	})

	ttt.Run("exponent tokens", func(t *testing.T) {
		items, err := EncodeNumber(1.5e-9)
		require.NoError(t, err)
		root, err := cst.Build("File", items)
		require.NoError(t, err)
		require.Equal(t, []cst.Token{
			{Kind: cst.Literal, Text: "1"},
			{Kind: cst.Punctuator, Text: "."},
			{Kind: cst.Literal, Text: "5"},
			{Kind: cst.Literal, Text: "e"},
			{Kind: cst.Punctuator, Text: "-"},
			{Kind: cst.Literal, Text: "9"},
		}, root.Tokens())
	})

	ttt.Run("NaN", func(t *testing.T) {
		_, err := EncodeNumber(math.NaN())
		require.ErrorIs(t, err, ErrUnsupportedLiteralKind)
	})
}

func TestEncodeLiteral(ttt *testing.T) {
	tests := []struct {
		name string
		lit  *estree.Literal
		want string
	}{
		{name: "null", lit: &estree.Literal{}, want: "null"},
		{name: "true", lit: &estree.Literal{Value: true}, want: "true"},
		{name: "false", lit: &estree.Literal{Value: false}, want: "false"},
		{name: "int", lit: &estree.Literal{Value: 7}, want: "7"},
		{name: "bigint", lit: &estree.Literal{Bigint: "12"}, want: "12n"},
		{name: "regex", lit: &estree.Literal{Regex: &estree.RegExp{Pattern: "a+b", Flags: "gi"}}, want: "/a+b/gi"},
		{name: "empty regex", lit: &estree.Literal{Regex: &estree.RegExp{}}, want: "/(?:)/"},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items, err := EncodeLiteral(tt.lit, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, cst.Text(items))
		})
	}

	ttt.Run("custom regex renderer", func(t *testing.T) {
		var gotPattern, gotFlags string
		render := func(pattern, flags string) []cst.Item {
			gotPattern, gotFlags = pattern, flags
			return []cst.Item{cst.Lit("RE")}
		}
		items, err := EncodeLiteral(&estree.Literal{Regex: &estree.RegExp{Pattern: "x", Flags: "u"}}, render)
		require.NoError(t, err)
		require.Equal(t, "RE", cst.Text(items))
		require.Equal(t, "x", gotPattern)
		require.Equal(t, "u", gotFlags)
	})

	ttt.Run("unsupported value", func(t *testing.T) {
		_, err := EncodeLiteral(&estree.Literal{Value: map[string]any{}}, nil)
		require.ErrorIs(t, err, ErrUnsupportedLiteralKind)
		var e *UnsupportedLiteralKindError
		require.ErrorAs(t, err, &e)
		require.Equal(t, "literal value", e.Reason)
	})
}
