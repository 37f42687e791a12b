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

// chainNode builds a node holding the windows of sequence s: a first k-mer
// carrying the complete window, then one k-mer per following window carrying
// only its trailing base.
func chainNode(t *testing.T, s string, k int) *SequenceNode {
	t.Helper()
	n := NewSequenceNode(1, "test")
	iter, err := NewWindowIterator(s, k)
	require.NoError(t, err)
	first := true
	for {
		window, fingerprint, _, ok := iter.Next()
		if !ok {
			break
		}
		if first {
			n.Append(NewFirstKmer(fingerprint, window, 1, 0, Forward))
			first = false
		} else {
			n.Append(NewKmer(fingerprint, window[len(window)-1], 1, 0, Forward))
		}
	}
	return n
}

func TestSequenceNodeAppendAndFind(t *testing.T) {
	n := chainNode(t, "ACCTA", 3)
	require.Equal(t, 3, n.KmerCount())

	pos, ok := n.Find(Fingerprint("CCT"))
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = n.Find(Fingerprint("GGG"))
	require.False(t, ok)
}

func TestSequenceNodeSequences(t *testing.T) {
	n := chainNode(t, "ACCTA", 3)
	require.Equal(t, "ACCTA", n.FullSequence())
	require.Equal(t, "CTA", n.Sequence())

	// full sequence length is k + kmerCount - 1
	require.Equal(t, 3+n.KmerCount()-1, len(n.FullSequence()))
}

func TestSequenceNodeInsertAt(t *testing.T) {
	n := NewSequenceNode(1, "test")
	n.Append(NewKmer(Fingerprint("CTA"), 'A', 1, 0, Forward))

	n.InsertAt(NewKmer(Fingerprint("CCT"), 'T', 1, 0, Forward), 0)
	require.Equal(t, "TA", n.Sequence())

	pos, ok := n.Find(Fingerprint("CCT"))
	require.True(t, ok)
	require.Equal(t, 0, pos)
	pos, ok = n.Find(Fingerprint("CTA"))
	require.True(t, ok)
	require.Equal(t, 1, pos)
}

func TestSequenceNodeMergeFromPrepends(t *testing.T) {
	front := chainNode(t, "ACCT", 3)
	back := NewSequenceNode(2, "test")
	back.Append(NewKmer(Fingerprint("CTA"), 'A', 1, 0, Forward))

	back.MergeFrom(front)
	require.Equal(t, 3, back.KmerCount())
	require.Equal(t, "ACCTA", back.FullSequence())

	for i, window := range []string{"ACC", "CCT", "CTA"} {
		pos, ok := back.Find(Fingerprint(window))
		require.True(t, ok)
		require.Equal(t, i, pos)
	}
}

func TestSequenceNodeEmpty(t *testing.T) {
	n := NewSequenceNode(1, "test")
	require.Equal(t, "", n.FullSequence())
	require.Equal(t, "", n.Sequence())
	require.Equal(t, 0, n.KmerCount())
}
