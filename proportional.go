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

// ProportionalPathBuilder walks each component from its source vertices,
// holding a guide proportion: once a branching decision fixes a proportion,
// later branches prefer the edge whose share of the outgoing weight lies
// within epsilon of it.
type ProportionalPathBuilder struct {
	walker
	epsilon float64
}

// NewProportionalPathBuilder returns a proportional builder over g.
func NewProportionalPathBuilder(g *ComponentGraph, epsilon float64) *ProportionalPathBuilder {
	return &ProportionalPathBuilder{walker: walker{g: g}, epsilon: epsilon}
}

// Epsilon returns the allowed deviation from the guide proportion.
func (b *ProportionalPathBuilder) Epsilon() float64 {
	return b.epsilon
}

// BuildPaths enumerates paths source by source, consuming edge weight after
// every walk. A source is retired once a walk from it followed no edges or
// fully consumed one of the edges it followed.
func (b *ProportionalPathBuilder) BuildPaths() []Path {
	var paths []Path
	sources := b.startingPoints()

	for len(sources) > 0 {
		v := sources[0]
		p := -1.0
		var lastEdge *WeightedEdge
		var followed []*WeightedEdge
		visited := []int{v}

		for {
			out := b.outgoing(v)
			if len(out) == 0 {
				break
			}

			// a junction fixes the guide proportion from the edge we
			// arrived on, if no branching decision fixed one before
			if p < 0 && lastEdge != nil {
				if in := b.incoming(v); len(in) > 1 {
					p = float64(lastEdge.Weight()) / b.sumWeights(in)
				}
			}

			var chosen GraphEdge
			if len(out) == 1 {
				chosen = out[0]
			} else {
				maxEdge := out[0]
				for _, e := range out[1:] {
					if e.Edge.Weight() > maxEdge.Edge.Weight() {
						maxEdge = e
					}
				}
				sum := b.sumWeights(out)

				if p < 0 {
					p = float64(maxEdge.Edge.Weight()) / sum
					chosen = maxEdge
				} else if closest, ok := b.closestEdge(out, sum, p); ok {
					chosen = closest
				} else {
					chosen = maxEdge
					// tighten the guide proportion, never loosen it
					if share := float64(maxEdge.Edge.Weight()) / sum; share < p {
						p = share
					}
				}
			}

			next := chosen.To
			if containsVertex(visited, next) {
				break
			}

			v = next
			lastEdge = chosen.Edge
			followed = append(followed, chosen.Edge)
			visited = append(visited, v)
		}

		paths = append(paths, b.nodesOf(visited))
		if b.consume(followed) {
			sources = sources[1:]
		}
	}

	return paths
}

// closestEdge returns the first outgoing edge whose weight share lies
// strictly within epsilon of the guide proportion.
func (b *ProportionalPathBuilder) closestEdge(out []GraphEdge, sum, p float64) (GraphEdge, bool) {
	for _, e := range out {
		share := float64(e.Edge.Weight()) / sum
		if share > p-b.epsilon && share < p+b.epsilon {
			return e, true
		}
	}
	return GraphEdge{}, false
}

func containsVertex(vertices []int, v int) bool {
	for _, u := range vertices {
		if u == v {
			return true
		}
	}
	return false
}
