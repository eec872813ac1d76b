package ast

import (
	"context"

	"github.com/viant/afs"
)

// Source loads a compiled AST document from any afs-addressable location:
// local file, in-memory, S3, GCS, or anything else afs.Service backs.
type Source struct {
	fs afs.Service
}

// NewSource wires an afs.Service as the backing store for compiled AST
// documents; a nil fs defaults to afs.New().
func NewSource(fs afs.Service) *Source {
	if fs == nil {
		fs = afs.New()
	}
	return &Source{fs: fs}
}

// Load downloads and decodes the compiled AST document at URL.
func (s *Source) Load(ctx context.Context, URL string) (*Node, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// LoadDictionary loads and decodes the document at URL and wraps it in a
// Dict ready for FindIDs/FindWalkers/Lookup queries.
func (s *Source) LoadDictionary(ctx context.Context, URL string) (*Dict, error) {
	root, err := s.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	return NewDict(root), nil
}
