// Copyright © 2023 the qassembler authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package qassembler

import "math"

// Path is an ordered walk through a component graph.
type Path []*SequenceNode

// Sequence returns the assembled sequence of the path: the full sequence of
// the first node followed by the tail sequence of every later node.
func (p Path) Sequence() string {
	if len(p) == 0 {
		return ""
	}
	s := p[0].FullSequence()
	for _, n := range p[1:] {
		s += n.Sequence()
	}
	return s
}

// PathBuilder enumerates candidate paths through one component graph.
// Builders destructively consume edge weight while walking; callers are
// expected to reset the graph's edge weights afterwards.
type PathBuilder interface {
	BuildPaths() []Path
}

// walker carries the traversal plumbing shared by the path builders.
type walker struct {
	g *ComponentGraph
}

// startingPoints returns the source vertices (in-degree zero), ordered by
// vertex id.
func (w *walker) startingPoints() []int {
	var sources []int
	for _, v := range w.g.Vertices() {
		if w.g.InDegree(v) == 0 {
			sources = append(sources, v)
		}
	}
	return sources
}

// outgoing returns the out-edges of v that still carry weight.
func (w *walker) outgoing(v int) []GraphEdge {
	var live []GraphEdge
	for _, e := range w.g.OutEdges(v) {
		if !e.Edge.Removed() {
			live = append(live, e)
		}
	}
	return live
}

// incoming returns the in-edges of v that still carry weight.
func (w *walker) incoming(v int) []GraphEdge {
	var live []GraphEdge
	for _, e := range w.g.InEdges(v) {
		if !e.Edge.Removed() {
			live = append(live, e)
		}
	}
	return live
}

func (w *walker) sumWeights(edges []GraphEdge) float64 {
	sum := 0.0
	for _, e := range edges {
		sum += float64(e.Edge.Weight())
	}
	return sum
}

// nodesOf converts a walk of vertex ids into a path of sequence nodes.
func (w *walker) nodesOf(vertices []int) Path {
	p := make(Path, len(vertices))
	for i, v := range vertices {
		p[i] = w.g.Node(v)
	}
	return p
}

// consume subtracts the walk's bottleneck from every followed edge: the
// smallest followed weight strictly greater than one, or everything when no
// such weight exists. It reports whether the walk exhausted the source: no
// edge was followed, or a followed edge dropped to zero.
func (w *walker) consume(followed []*WeightedEdge) bool {
	smallest := uint64(math.MaxUint64)
	for _, e := range followed {
		if weight := e.Weight(); weight > 1 && weight < smallest {
			smallest = weight
		}
	}
	for _, e := range followed {
		e.Decrease(smallest)
	}
	if len(followed) == 0 {
		return true
	}
	for _, e := range followed {
		if e.Removed() {
			return true
		}
	}
	return false
}
