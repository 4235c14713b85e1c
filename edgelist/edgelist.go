// Package edgelist reads and writes graphs in the two-column edge-list
// record format: one `source,destination` pair per line, no header.
//
// Import builds a core.Graph through the normal construction contract, so
// duplicate records are suppressed and vertex creation is idempotent.
// Export emits one row per stored adjacency entry; in an undirected graph
// a mirrored edge therefore appears once per direction, exactly as stored.
//
// I/O failures are wrapped and surfaced to the caller; a failed export
// never mutates the in-memory graph.
package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MohamammadMustafaHakimi/VizGraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Write.
var ErrGraphNil = errors.New("edgelist: graph is nil")

// Read parses `source,destination` records from r and builds a Graph with
// the given options (e.g. core.WithDirected(true)). Records must have
// exactly two fields; malformed input aborts with a wrapped parse error
// naming the offending line.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edgelist: read: %w", err)
		}
		if err = g.AddEdge(rec[0], rec[1]); err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("edgelist: line %d: %w", line, err)
		}
	}

	return g, nil
}

// Write emits the edge list of g to w, one `source,destination` row per
// stored adjacency entry, vertices and neighbors in insertion order.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	cw := csv.NewWriter(w)
	for _, v := range g.Vertices() {
		for _, nb := range g.Neighbors(v) {
			if err := cw.Write([]string{v, nb}); err != nil {
				return fmt.Errorf("edgelist: write %s,%s: %w", v, nb, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("edgelist: flush: %w", err)
	}

	return nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// WriteFile exports g to path, creating or truncating the file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: create %s: %w", path, err)
	}
	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("edgelist: close %s: %w", path, err)
	}

	return nil
}
