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

import "strings"

// PreHash is a first-pass k-mer counter built over the forward and reverse
// complement of every read. During graph construction it serves as an
// acceptance filter for low-support k-mers.
type PreHash struct {
	k            int
	fingerprints map[uint64]map[uint64]struct{}  // fingerprint -> read ids
	reads        map[uint64]map[Strand][]uint64  // read id -> strand -> fingerprints
}

// NewPreHash returns an empty pre-hash for k-length windows.
func NewPreHash(k int) *PreHash {
	return &PreHash{
		k:            k,
		fingerprints: make(map[uint64]map[uint64]struct{}),
		reads:        make(map[uint64]map[Strand][]uint64),
	}
}

// AddRead indexes every window of the read, forward and reverse complement.
// Reads shorter than k are ignored.
func (p *PreHash) AddRead(read *Sequence) {
	if read.Len() < p.k {
		return
	}
	p.addOriented(read.Sequence(), read.ID(), Forward)
	p.addOriented(read.ReverseComplement(), read.ID(), Reverse)
}

func (p *PreHash) addOriented(sequence string, read uint64, strand Strand) {
	iter, err := NewWindowIterator(strings.ToUpper(sequence), p.k)
	if err != nil {
		return
	}
	for {
		_, fingerprint, _, ok := iter.Next()
		if !ok {
			break
		}
		p.add(fingerprint, read, strand)
	}
}

func (p *PreHash) add(fingerprint uint64, read uint64, strand Strand) {
	if p.fingerprints[fingerprint] == nil {
		p.fingerprints[fingerprint] = make(map[uint64]struct{})
	}
	p.fingerprints[fingerprint][read] = struct{}{}
	if p.reads[read] == nil {
		p.reads[read] = make(map[Strand][]uint64)
	}
	p.reads[read][strand] = append(p.reads[read][strand], fingerprint)
}

// KmerCount returns the number of reads containing the given window.
func (p *PreHash) KmerCount(window string) int {
	return p.FingerprintCount(Fingerprint(window))
}

// FingerprintCount returns the number of reads containing the window with
// the given fingerprint.
func (p *PreHash) FingerprintCount(fingerprint uint64) int {
	return len(p.fingerprints[fingerprint])
}

// ReadsContaining returns the identifiers of all reads containing the
// window with the given fingerprint, in no particular order.
func (p *PreHash) ReadsContaining(fingerprint uint64) []uint64 {
	ids := make([]uint64, 0, len(p.fingerprints[fingerprint]))
	for id := range p.fingerprints[fingerprint] {
		ids = append(ids, id)
	}
	return ids
}

// Fingerprints returns the window fingerprints of one read on one strand,
// in window order.
func (p *PreHash) Fingerprints(read uint64, strand Strand) []uint64 {
	return p.reads[read][strand]
}
