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
	stderrors "errors"
	"math"

	"github.com/pkg/errors"
)

// MarkovChainAbundance scores each path with its log-probability under the
// first-order Markov chain defined by the edge weights: the log-probability
// of entering the model at the path's first k-mer, plus the log-probability
// of every vertex-to-vertex transition the path crosses. Transitions inside
// a vertex are certain and contribute nothing.
type MarkovChainAbundance struct {
	markovAbundance
}

// NewMarkovChainAbundance returns a markov-chain estimator for the given
// paths.
func NewMarkovChainAbundance(asm *Assembly, paths []string) *MarkovChainAbundance {
	return &MarkovChainAbundance{markovAbundance: newMarkovAbundance(asm, paths)}
}

// ComputeAbundances scores every path. A path whose windows leave the
// component it started in fails with ErrPathSpansGraphs; failed paths are
// omitted from the result and their errors joined.
func (m *MarkovChainAbundance) ComputeAbundances() (map[string]float64, error) {
	records := make(map[string]float64, len(m.paths))
	var errs []error

	for _, path := range m.paths {
		probability, err := m.scorePath(path)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "path %.32q", path))
			continue
		}
		records[path] = probability
	}

	return records, stderrors.Join(errs...)
}

func (m *MarkovChainAbundance) scorePath(path string) (float64, error) {
	k := m.asm.K()
	if len(path) < k {
		return 0, errors.Wrapf(ErrShortSeq, "%d bp", len(path))
	}

	hash := Fingerprint(path[:k])
	g, v, ok := m.asm.GraphAndVertexFor(hash)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidGraphState, "first k-mer %#x not in any graph", hash)
	}

	// entering the model: instances of this vertex's first k-mer over all
	// begin-state transitions
	probability := math.Log(float64(g.Node(v).Kmer(0).Count())) - math.Log(m.beginStateSum)

	for i := k; i < len(path); i++ {
		nextHash := Fingerprint(path[i-k+1 : i+1])
		nextG, nextV, ok := m.asm.GraphAndVertexFor(nextHash)
		if !ok {
			return 0, errors.Wrapf(ErrInvalidGraphState, "k-mer %#x not in any graph", nextHash)
		}
		if nextG.ID() != g.ID() {
			return 0, ErrPathSpansGraphs
		}

		if nextV != v {
			shared, ok := g.Edge(v, nextV)
			if !ok {
				return 0, errors.Wrapf(ErrInvalidGraphState,
					"no edge between vertices %d and %d", v, nextV)
			}
			probability += math.Log(float64(shared.Weight())) - math.Log(outgoingWeightSum(g, v))
		}

		g, v = nextG, nextV
	}

	return probability, nil
}
