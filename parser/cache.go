package parser

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	lru "github.com/hashicorp/golang-lru"
)

// Document holds one parsed source file.
type Document struct {
	Path    string
	Source  []byte
	Errors  []ParseError
	tree    *sitter.Tree
	modTime time.Time
}

// Root returns the root node of the document's syntax tree.
func (d *Document) Root() sitter.Node {
	return d.tree.RootNode()
}

// Close releases the syntax tree. The document must not be used afterwards.
func (d *Document) Close() {
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
}

// Store maintains a bounded cache of parsed documents keyed by path. Evicted
// and stale documents have their trees closed by the store; documents handed
// out by Get stay valid until evicted, so callers should finish with a
// document before parsing large numbers of further files.
type Store struct {
	mu     sync.Mutex
	parser *Parser
	cache  *lru.Cache
}

// NewStore constructs a store holding at most capacity parsed documents.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = 64
	}
	cache, err := lru.NewWithEvict(capacity, func(_, value any) {
		if doc, ok := value.(*Document); ok {
			doc.Close()
		}
	})
	if err != nil {
		return nil, err
	}
	return &Store{parser: New(), cache: cache}, nil
}

// Get returns the parsed document for path, reparsing when the file changed
// on disk since it was cached.
func (s *Store) Get(ctx context.Context, path string) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if cached, ok := s.cache.Get(path); ok {
		doc := cached.(*Document)
		if doc.modTime.Equal(info.ModTime()) {
			return doc, nil
		}
		s.cache.Remove(path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := s.parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Path:    path,
		Source:  source,
		Errors:  SyntaxErrors(tree.RootNode(), source),
		tree:    tree,
		modTime: info.ModTime(),
	}
	s.cache.Add(path, doc)
	return doc, nil
}

// Purge drops every cached document.
func (s *Store) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
}
