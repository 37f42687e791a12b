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

import (
	"math/rand"
	"sort"

	"github.com/seehuhn/mt19937"
)

// markovSeed makes every run draw the same edge sequence, so path
// enumeration is reproducible across runs.
const markovSeed = 42

// MarkovPathBuilder walks each component from its source vertices, choosing
// among branches at random with probability proportional to edge weight.
type MarkovPathBuilder struct {
	walker
	rng *rand.Rand
}

// NewMarkovPathBuilder returns a markov builder over g with a Mersenne
// Twister seeded deterministically.
func NewMarkovPathBuilder(g *ComponentGraph) *MarkovPathBuilder {
	src := mt19937.New()
	src.Seed(markovSeed)
	return &MarkovPathBuilder{walker: walker{g: g}, rng: rand.New(src)}
}

// BuildPaths enumerates paths source by source, consuming edge weight after
// every walk. A source is retired once a walk from it followed no edges or
// fully consumed one of the edges it followed. Unlike the proportional
// builder there is no cycle guard: the draw may revisit vertices.
func (b *MarkovPathBuilder) BuildPaths() []Path {
	var paths []Path
	sources := b.startingPoints()

	for len(sources) > 0 {
		v := sources[0]
		var followed []*WeightedEdge
		visited := []int{v}

		for {
			out := b.outgoing(v)
			if len(out) == 0 {
				break
			}

			var chosen GraphEdge
			if len(out) == 1 {
				chosen = out[0]
			} else {
				chosen = b.drawEdge(out)
			}

			v = chosen.To
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

// drawEdge picks one of the outgoing edges at random: edges are normalized
// to probabilities, sorted ascending, and the first edge whose cumulative
// probability exceeds a uniform draw wins.
func (b *MarkovPathBuilder) drawEdge(out []GraphEdge) GraphEdge {
	sum := b.sumWeights(out)
	weighted := make([]GraphEdge, len(out))
	copy(weighted, out)
	// out is ordered by target vertex id, the stable sort keeps that order
	// for equal probabilities
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].Edge.Weight() < weighted[j].Edge.Weight()
	})

	u := b.rng.Float64()
	total := 0.0
	for _, e := range weighted {
		total += float64(e.Edge.Weight()) / sum
		if total > u {
			return e
		}
	}
	// cumulative probabilities sum to one up to float error, so the draw
	// can only fall through on the last edge
	return weighted[len(weighted)-1]
}
