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

func mustSequence(t *testing.T, sequence, name string, id uint64) *Sequence {
	t.Helper()
	read, err := NewSequence(sequence, name, "", "")
	require.NoError(t, err)
	read.SetID(id)
	return read
}

func TestPreHashCountsReadsPerKmer(t *testing.T) {
	p := NewPreHash(3)
	p.AddRead(mustSequence(t, "ACCT", "read1", 1))
	p.AddRead(mustSequence(t, "CCTA", "read2", 2))

	// forward windows
	require.Equal(t, 1, p.KmerCount("ACC"))
	require.Equal(t, 2, p.KmerCount("CCT"))
	require.Equal(t, 1, p.KmerCount("CTA"))
	// reverse complement windows: AGGT and TAGG
	require.Equal(t, 2, p.KmerCount("AGG"))
	require.Equal(t, 1, p.KmerCount("GGT"))
	require.Equal(t, 1, p.KmerCount("TAG"))
	// absent
	require.Equal(t, 0, p.KmerCount("GGG"))
}

func TestPreHashFingerprintsPerStrand(t *testing.T) {
	p := NewPreHash(3)
	p.AddRead(mustSequence(t, "ACCT", "read1", 1))

	require.Equal(t,
		[]uint64{Fingerprint("ACC"), Fingerprint("CCT")},
		p.Fingerprints(1, Forward))
	require.Equal(t,
		[]uint64{Fingerprint("AGG"), Fingerprint("GGT")},
		p.Fingerprints(1, Reverse))
}

func TestPreHashReadsContaining(t *testing.T) {
	p := NewPreHash(3)
	p.AddRead(mustSequence(t, "ACCT", "read1", 1))
	p.AddRead(mustSequence(t, "CCTA", "read2", 2))

	require.ElementsMatch(t, []uint64{1, 2}, p.ReadsContaining(Fingerprint("CCT")))
	require.ElementsMatch(t, []uint64{1}, p.ReadsContaining(Fingerprint("ACC")))
	require.Equal(t, 2, p.FingerprintCount(Fingerprint("CCT")))
}

func TestPreHashIgnoresShortReads(t *testing.T) {
	p := NewPreHash(5)
	p.AddRead(mustSequence(t, "ACC", "tiny", 1))
	require.Equal(t, 0, p.KmerCount("ACC"))
	require.Empty(t, p.Fingerprints(1, Forward))
}
