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

// Abundance scores a set of assembled path sequences against the locked
// edge-weight distribution of an assembly. Per-path failures are joined
// into the returned error; the remaining paths still score.
type Abundance interface {
	ComputeAbundances() (map[string]float64, error)
}

// markovAbundance carries what both markov estimators share: the assembly,
// the candidate paths, and the total weight of transitions out of the
// implicit begin state.
type markovAbundance struct {
	asm   *Assembly
	paths []string

	beginStateSum float64
}

func newMarkovAbundance(asm *Assembly, paths []string) markovAbundance {
	return markovAbundance{
		asm:           asm,
		paths:         paths,
		beginStateSum: beginStateTransitionSum(asm),
	}
}

// beginStateTransitionSum totals, over every source vertex of every
// component, the observation count of the vertex's first k-mer. This is the
// normalizer for the probability of entering the model at a given k-mer.
func beginStateTransitionSum(asm *Assembly) float64 {
	sum := 0
	for _, g := range asm.Components() {
		for _, v := range g.Vertices() {
			if g.InDegree(v) == 0 {
				sum += g.Node(v).Kmer(0).Count()
			}
		}
	}
	return float64(sum)
}

// outgoingWeightSum totals the weight of every edge leaving v, consumed
// edges included.
func outgoingWeightSum(g *ComponentGraph, v int) float64 {
	sum := uint64(0)
	for _, e := range g.OutEdges(v) {
		sum += e.Edge.Weight()
	}
	return float64(sum)
}
