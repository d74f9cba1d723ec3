package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpast/ast"
)

func TestIntegerLiterals(t *testing.T) {
	root := mustConvert(t, "<?php 10; 0x10; 0b101; 1_000; ", Options{Version: V2})
	vals := stmts(t, root)
	require.Equal(t, int64(10), vals[0])
	require.Equal(t, int64(16), vals[1])
	require.Equal(t, int64(5), vals[2])
	require.Equal(t, int64(1000), vals[3])
}

func TestIntegerOverflowBecomesFloat(t *testing.T) {
	root := mustConvert(t, "<?php 9223372036854775808; ", Options{Version: V2})
	vals := stmts(t, root)
	require.IsType(t, float64(0), vals[0])
}

func TestFloatLiterals(t *testing.T) {
	root := mustConvert(t, "<?php 1.5; 1e3; ", Options{Version: V2})
	vals := stmts(t, root)
	require.Equal(t, 1.5, vals[0])
	require.Equal(t, 1000.0, vals[1])
}

func TestSingleQuotedString(t *testing.T) {
	root := mustConvert(t, `<?php 'a\'b'; `, Options{Version: V2})
	vals := stmts(t, root)
	require.Equal(t, "a'b", vals[0])
}

func TestDoubleQuotedWithoutInterpolation(t *testing.T) {
	root := mustConvert(t, `<?php "a\nb"; `, Options{Version: V2})
	vals := stmts(t, root)
	require.Equal(t, "a\nb", vals[0])
}

func TestInterpolatedString(t *testing.T) {
	root := mustConvert(t, `<?php "x $v y"; `, Options{Version: V2})
	vals := stmts(t, root)
	list := nodeAt(t, vals, 0)
	require.Equal(t, ast.KindEncapsList, list.Kind)

	parts := list.List()
	require.Len(t, parts, 3)
	require.Equal(t, "x ", parts[0])
	v := nodeAt(t, parts, 1)
	require.Equal(t, ast.KindVar, v.Kind)
	require.Equal(t, " y", parts[2])
}

func TestBooleanAndNullLiterals(t *testing.T) {
	root := mustConvert(t, "<?php true; null; ", Options{Version: V2})
	vals := stmts(t, root)
	for i, want := range []string{"true", "null"} {
		c := nodeAt(t, vals, i)
		require.Equal(t, ast.KindConst, c.Kind)
		name, _ := c.ChildNode("name").Child("name")
		require.Equal(t, want, name)
	}
}

func TestDecodeEscape(t *testing.T) {
	require.Equal(t, "\n", decodeEscape(`\n`))
	require.Equal(t, "\t", decodeEscape(`\t`))
	require.Equal(t, `\`, decodeEscape(`\\`))
	require.Equal(t, "$", decodeEscape(`\$`))
	require.Equal(t, "A", decodeEscape(`\x41`))
	require.Equal(t, "A", decodeEscape(`\101`))
	require.Equal(t, "é", decodeEscape(`\u{e9}`))
	// Unknown sequences keep their backslash.
	require.Equal(t, `\q`, decodeEscape(`\q`))
}

func TestRawStringBody(t *testing.T) {
	require.Equal(t, "abc", rawStringBody(`'abc'`))
	require.Equal(t, "abc", rawStringBody(`b'abc'`))
	require.Equal(t, "", rawStringBody(`''`))
}
