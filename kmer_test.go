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

func TestFingerprintIsStable(t *testing.T) {
	require.Equal(t, Fingerprint("ACGT"), Fingerprint("ACGT"))
	require.NotEqual(t, Fingerprint("ACGT"), Fingerprint("ACGA"))
}

func TestKmerObservations(t *testing.T) {
	mer := NewKmer(Fingerprint("ACC"), 'C', 1, 0, Forward)
	require.Equal(t, 1, mer.Count())

	mer.AddObservation(2, 3, Reverse)
	require.Equal(t, 2, mer.Count())

	// a later observation for the same read overwrites the earlier one
	mer.AddObservation(1, 5, Reverse)
	require.Equal(t, 2, mer.Count())
	require.Equal(t, Observation{Offset: 5, Strand: Reverse}, mer.Observations()[1])
}

func TestKmerTransitions(t *testing.T) {
	mer := NewKmer(Fingerprint("ACC"), 'C', 1, 0, Forward)
	require.Equal(t, 0, mer.TransitionCount('T'))

	mer.AddTransition('T')
	mer.AddTransition('T')
	mer.AddTransition('G')

	require.Equal(t, 2, mer.TransitionCount('T'))
	require.Equal(t, 1, mer.TransitionCount('G'))
	require.Equal(t, 0, mer.TransitionCount('A'))
}

func TestKmerBaseAndSequence(t *testing.T) {
	mer := NewKmer(Fingerprint("ACC"), 'C', 1, 0, Forward)
	require.Equal(t, byte('C'), mer.Base())
	require.Equal(t, "C", mer.Sequence())
}

func TestFirstKmerBaseAndSequence(t *testing.T) {
	mer := NewFirstKmer(Fingerprint("ACCT"), "ACCT", 1, 0, Forward)
	require.Equal(t, byte('T'), mer.Base())
	require.Equal(t, "ACCT", mer.Sequence())
}

func TestWindowIterator(t *testing.T) {
	iter, err := NewWindowIterator("ACCTA", 3)
	require.NoError(t, err)

	var windows []string
	var ends []int
	for {
		window, fingerprint, end, ok := iter.Next()
		if !ok {
			break
		}
		require.Equal(t, Fingerprint(window), fingerprint)
		windows = append(windows, window)
		ends = append(ends, end)
	}
	require.Equal(t, []string{"ACC", "CCT", "CTA"}, windows)
	require.Equal(t, []int{2, 3, 4}, ends)
}

func TestWindowIteratorShortSeq(t *testing.T) {
	_, err := NewWindowIterator("AC", 3)
	require.ErrorIs(t, err, ErrShortSeq)
}
