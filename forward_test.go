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

func TestForwardAlgorithmLinearPathIsCertain(t *testing.T) {
	asm := NewAssembly(3, false)
	addReads(t, asm, "ACCT", "CCTA")
	asm.LockEdgeWeights()

	estimator := NewForwardAlgorithmAbundance(asm, []string{"ACCTA"})
	records, err := estimator.ComputeAbundances()
	require.NoError(t, err)

	// every window sits inside the single vertex, the probability carries
	// through unchanged
	require.InDelta(t, 1.0, records["ACCTA"], 1e-12)
}

func TestForwardAlgorithmWeighsBranches(t *testing.T) {
	asm := NewAssembly(5, false)
	addReads(t, asm, "AAACCCCGT", "AAACCCGA", "AAACCCCGT")
	asm.LockEdgeWeights()

	paths := []string{"AAACCCCGT", "AAACCCGA"}
	estimator := NewForwardAlgorithmAbundance(asm, paths)
	records, err := estimator.ComputeAbundances()
	require.NoError(t, err)

	// the branch into the CGT tail carries 2 of the 3 outgoing
	// observations, the GA tail the remaining 1
	require.InDelta(t, 2.0/3.0, records["AAACCCCGT"], 1e-12)
	require.InDelta(t, 1.0/3.0, records["AAACCCGA"], 1e-12)
}

func TestForwardAlgorithmRejectsPathAcrossGraphs(t *testing.T) {
	asm := NewAssembly(3, false)
	addReads(t, asm, "ACCT", "CTAG")
	asm.LockEdgeWeights()

	estimator := NewForwardAlgorithmAbundance(asm, []string{"CCTAG"})
	_, err := estimator.ComputeAbundances()
	require.ErrorIs(t, err, ErrPathSpansGraphs)
}
