package view

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/hullbridge/kernel"
)

// Numbering assigns display numbers to facets, vertices and ridges in the
// order they are first printed. Numbers mean nothing outside the Numbering
// that produced them, and elements from a different kernel are shown as "?".
// Points are always numbered by their position in the input.
type Numbering struct {
	qh       *kernel.State
	facets   map[*kernel.Facet]int
	vertices map[*kernel.Vertex]int
	ridges   map[*kernel.Ridge]int
}

func NewNumbering(qh *kernel.State) *Numbering {
	return &Numbering{
		qh:       qh,
		facets:   map[*kernel.Facet]int{},
		vertices: map[*kernel.Vertex]int{},
		ridges:   map[*kernel.Ridge]int{},
	}
}

func number[K comparable](ids map[K]int, key K) int {
	if id, ok := ids[key]; ok {
		return id
	}
	id := len(ids)
	ids[key] = id
	return id
}

func (n *Numbering) Facet(f Facet) int {
	if !f.IsValid() || f.qh != n.qh {
		return -1
	}
	return number(n.facets, f.f)
}

func (n *Numbering) Vertex(v Vertex) int {
	if !v.IsValid() || v.qh != n.qh {
		return -1
	}
	return number(n.vertices, v.v)
}

func (n *Numbering) Ridge(r Ridge) int {
	if !r.IsValid() || r.qh != n.qh {
		return -1
	}
	return number(n.ridges, r.r)
}

func (n *Numbering) Point(p Point) int {
	if p.qh != n.qh {
		return -1
	}
	return p.ID()
}

// Printout is a collection ready to be streamed. The label, if any, is
// written first.
type Printout struct {
	label string
	n     *Numbering
	body  func(w io.Writer, n *Numbering)
}

func (p Printout) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	io.WriteString(&buf, p.label)
	p.body(&buf, p.n)
	written, err := w.Write(buf.Bytes())
	return int64(written), errors.Wrap(err, "could not write printout")
}

func (p Printout) String() string {
	var sb strings.Builder
	p.WriteTo(&sb)
	return sb.String()
}

func printAll[E Element[E]](qh *kernel.State, label string, n *Numbering, seq iter.Seq[E]) Printout {
	if n == nil {
		n = NewNumbering(qh)
	}
	return Printout{label, n, func(w io.Writer, n *Numbering) {
		for e := range seq {
			e.format(w, n)
		}
	}}
}

func printIdentifiers[E Element[E]](qh *kernel.State, label string, n *Numbering, seq iter.Seq[E]) Printout {
	if n == nil {
		n = NewNumbering(qh)
	}
	return Printout{label, n, func(w io.Writer, n *Numbering) {
		io.WriteString(w, identifiers(seq, n))
		io.WriteString(w, "\n")
	}}
}

func identifiers[E Element[E]](seq iter.Seq[E], n *Numbering) string {
	var ids []string
	for e := range seq {
		ids = append(ids, e.identifier(n))
	}
	return strings.Join(ids, " ")
}

func label(prefix string, id int) string {
	if id < 0 {
		return prefix + "?"
	}
	return prefix + strconv.Itoa(id)
}

func writeCoordinates(w io.Writer, coords []float64) {
	for _, c := range coords {
		fmt.Fprintf(w, " %g", c)
	}
}
