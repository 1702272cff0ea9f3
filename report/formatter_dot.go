package report

import (
	"bytes"
	"errors"
	"path/filepath"

	"github.com/LegacyCodeHQ/jardeps/resolution"
	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// DOTFormatter renders which source files pull in which archives as a
// Graphviz digraph.
type DOTFormatter struct{}

// Format converts the resolution report to Graphviz DOT format.
// The opts parameter is accepted for interface compatibility but not used.
func (f *DOTFormatter) Format(r *resolution.Report, _ FormatOptions) (string, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for _, source := range r.UsageFiles() {
		if err := addVertex(g, source, "note", filepath.Base(source)); err != nil {
			return "", err
		}
		for _, archive := range r.Usages[source] {
			if err := addVertex(g, archive, "box", filepath.Base(archive)); err != nil {
				return "", err
			}
			if err := g.AddEdge(source, archive); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := draw.DOT(g, &buf, draw.GraphAttribute("rankdir", "LR")); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func addVertex(g graphlib.Graph[string, string], vertex, shape, label string) error {
	err := g.AddVertex(vertex,
		graphlib.VertexAttribute("shape", shape),
		graphlib.VertexAttribute("label", label))
	if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return err
	}
	return nil
}
