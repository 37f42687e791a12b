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

	"github.com/pkg/errors"
)

// ForwardAlgorithmAbundance scores each path with the forward algorithm: a
// dynamic program over path positions where a k-mer in the interior of a
// vertex inherits its predecessor's probability unchanged, and a k-mer at
// the head of a vertex sums over the in-neighbours weighted by their
// normalized edge weights.
type ForwardAlgorithmAbundance struct {
	markovAbundance
}

// NewForwardAlgorithmAbundance returns a forward-algorithm estimator for
// the given paths.
func NewForwardAlgorithmAbundance(asm *Assembly, paths []string) *ForwardAlgorithmAbundance {
	return &ForwardAlgorithmAbundance{markovAbundance: newMarkovAbundance(asm, paths)}
}

// ComputeAbundances scores every path. Failed paths are omitted from the
// result and their errors joined.
func (f *ForwardAlgorithmAbundance) ComputeAbundances() (map[string]float64, error) {
	records := make(map[string]float64, len(f.paths))
	var errs []error

	for _, path := range f.paths {
		probability, err := f.scorePath(path)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "path %.32q", path))
			continue
		}
		records[path] = probability
	}

	return records, stderrors.Join(errs...)
}

func (f *ForwardAlgorithmAbundance) scorePath(path string) (float64, error) {
	k := f.asm.K()
	if len(path) < k {
		return 0, errors.Wrapf(ErrShortSeq, "%d bp", len(path))
	}

	firstHash := Fingerprint(path[:k])
	firstG, _, ok := f.asm.GraphAndVertexFor(firstHash)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidGraphState, "first k-mer %#x not in any graph", firstHash)
	}

	// forward probabilities by position, keyed by the fingerprint at that
	// position
	m := map[int]map[uint64]float64{
		k - 1: {firstHash: 1},
	}

	hash := firstHash
	for i := k; i < len(path); i++ {
		prevHash := hash
		hash = Fingerprint(path[i-k+1 : i+1])

		g, v, ok := f.asm.GraphAndVertexFor(hash)
		if !ok {
			return 0, errors.Wrapf(ErrInvalidGraphState, "k-mer %#x not in any graph", hash)
		}
		if g.ID() != firstG.ID() {
			return 0, ErrPathSpansGraphs
		}

		if m[i] == nil {
			m[i] = make(map[uint64]float64)
		}

		pos, _ := g.Node(v).Find(hash)
		if pos != 0 {
			// interior of a vertex: the only possible predecessor is the
			// preceding k-mer, the transition is certain
			m[i][hash] = m[i-1][prevHash]
			continue
		}

		sum := 0.0
		for _, in := range g.InEdges(v) {
			neighbour := g.Node(in.From)
			transition := float64(in.Edge.Weight()) / outgoingWeightSum(g, in.From)
			neighbourHash := neighbour.Kmer(neighbour.KmerCount() - 1).Fingerprint()

			// the initial state only contributes when the predecessor
			// position is the initial position and the neighbour ends in
			// the initial k-mer
			var forward float64
			if (i-1 == k-1) != (neighbourHash == firstHash) {
				forward = 0
			} else {
				forward = m[i-1][neighbourHash]
			}
			sum += forward * transition
		}
		m[i][hash] = sum
	}

	return m[len(path)-1][hash], nil
}
