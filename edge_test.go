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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedEdgeStartsAtOne(t *testing.T) {
	e := NewWeightedEdge()
	require.Equal(t, uint64(1), e.Weight())
	require.False(t, e.Removed())
}

func TestWeightedEdgeIncreaseDecrease(t *testing.T) {
	e := NewWeightedEdge()
	e.Increase(4)
	require.Equal(t, uint64(5), e.Weight())

	e.Decrease(3)
	require.Equal(t, uint64(2), e.Weight())

	e.Decrease(10)
	require.Equal(t, uint64(0), e.Weight())
	require.True(t, e.Removed())
}

func TestWeightedEdgeLockDecreaseReset(t *testing.T) {
	e := NewWeightedEdge()
	e.SetWeight(20)
	e.Lock()

	e.Decrease(40)
	require.Equal(t, uint64(0), e.Weight())
	require.True(t, e.Removed())

	e.Reset()
	require.Equal(t, uint64(20), e.Weight())
	require.False(t, e.Removed())
}

func TestWeightedEdgeSetWeightKeepsSnapshot(t *testing.T) {
	e := NewWeightedEdge()
	e.SetWeight(7)
	require.Equal(t, uint64(7), e.Weight())

	// the snapshot was taken at construction
	e.Reset()
	require.Equal(t, uint64(1), e.Weight())
}
