package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValidSource(t *testing.T) {
	p := New()
	tree, err := p.Parse(context.Background(), []byte("<?php $a = 1;\n"))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	require.False(t, root.IsNull())
	require.Equal(t, "program", root.Type())
	require.Empty(t, SyntaxErrors(root, []byte("<?php $a = 1;\n")))
}

func TestSyntaxErrorsReportLines(t *testing.T) {
	source := []byte("<?php\n$a = 1;\nfunction ( {\n")
	p := New()
	tree, err := p.Parse(context.Background(), source)
	require.NoError(t, err)
	defer tree.Close()

	errs := SyntaxErrors(tree.RootNode(), source)
	require.NotEmpty(t, errs)
	for _, e := range errs {
		require.GreaterOrEqual(t, e.Line, 1)
		require.NotEmpty(t, e.Message)
		require.Contains(t, e.Error(), "line ")
	}
}

func TestStoreCachesDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.php")
	require.NoError(t, os.WriteFile(path, []byte("<?php $a = 1;\n"), 0o644))

	store, err := NewStore(4)
	require.NoError(t, err)
	defer store.Purge()

	first, err := store.Get(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, path, first.Path)
	require.Empty(t, first.Errors)
	require.False(t, first.Root().IsNull())

	second, err := store.Get(context.Background(), path)
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestStoreMissingFile(t *testing.T) {
	store, err := NewStore(0)
	require.NoError(t, err)
	_, err = store.Get(context.Background(), filepath.Join(t.TempDir(), "absent.php"))
	require.Error(t, err)
}

func TestStoreCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.php")
	require.NoError(t, os.WriteFile(path, []byte("<?php function ( {\n"), 0o644))

	store, err := NewStore(0)
	require.NoError(t, err)
	defer store.Purge()

	doc, err := store.Get(context.Background(), path)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Errors)
}
