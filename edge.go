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

// WeightedEdge is an edge weight with a lockable snapshot. Path builders
// destructively consume weight during traversal; the locked snapshot lets
// callers restore the weights afterwards.
type WeightedEdge struct {
	weight uint64
	locked uint64
}

// NewWeightedEdge returns an edge with weight 1.
func NewWeightedEdge() *WeightedEdge {
	return &WeightedEdge{weight: 1, locked: 1}
}

// Weight returns the current weight.
func (e *WeightedEdge) Weight() uint64 {
	return e.weight
}

// SetWeight sets the current weight. The locked snapshot is untouched.
func (e *WeightedEdge) SetWeight(weight uint64) {
	e.weight = weight
}

// Increase adds amount to the current weight.
func (e *WeightedEdge) Increase(amount uint64) {
	e.weight += amount
}

// Decrease subtracts amount from the current weight, flooring at zero.
func (e *WeightedEdge) Decrease(amount uint64) {
	if amount < e.weight {
		e.weight -= amount
	} else {
		e.weight = 0
	}
}

// Lock snapshots the current weight.
func (e *WeightedEdge) Lock() {
	e.locked = e.weight
}

// Reset restores the current weight from the locked snapshot.
func (e *WeightedEdge) Reset() {
	e.weight = e.locked
}

// Removed reports whether this edge should be treated as absent.
func (e *WeightedEdge) Removed() bool {
	return e.weight < 1
}
