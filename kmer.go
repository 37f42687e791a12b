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
	farm "github.com/dgryski/go-farm"
)

// Strand is the orientation of a read when a k-mer was generated from it.
type Strand int

const (
	// Forward means the k-mer came from the read as sequenced.
	Forward Strand = iota
	// Reverse means the k-mer came from the reverse complement of the read.
	Reverse
)

func (s Strand) String() string {
	if s == Forward {
		return "forward"
	}
	return "reverse"
}

// Fingerprint returns the 64-bit identifier for a k-mer window.
// It is stable within a run; the assembler treats fingerprint equality
// as sequence equality.
func Fingerprint(window string) uint64 {
	return farm.Hash64([]byte(window))
}

// Observation records where a k-mer was seen: the offset in the read and
// the strand the read was oriented in when the window was generated.
type Observation struct {
	Offset int
	Strand Strand
}

// Kmer is one fixed-length nucleotide window. It carries the window's
// fingerprint, the last nucleotide of the window, all observations keyed by
// read identifier, and a histogram of the nucleotides this window was
// observed to transition to.
//
// The first k-mer of a sequence node additionally stores the complete
// k-length window so the node's leading sequence can be reconstructed.
type Kmer struct {
	fingerprint  uint64
	base         byte
	window       string // complete window, only set on a node's first k-mer
	observations map[uint64]Observation
	transitions  map[byte]int
}

// NewKmer returns a k-mer carrying only its trailing base, with an initial
// observation.
func NewKmer(fingerprint uint64, base byte, read uint64, offset int, strand Strand) *Kmer {
	return &Kmer{
		fingerprint:  fingerprint,
		base:         base,
		observations: map[uint64]Observation{read: {Offset: offset, Strand: strand}},
		transitions:  make(map[byte]int),
	}
}

// NewFirstKmer returns a k-mer that stores its complete window, with an
// initial observation.
func NewFirstKmer(fingerprint uint64, window string, read uint64, offset int, strand Strand) *Kmer {
	mer := NewKmer(fingerprint, 'x', read, offset, strand)
	mer.window = window
	return mer
}

// Fingerprint returns the fingerprint of this window.
func (mer *Kmer) Fingerprint() uint64 {
	return mer.fingerprint
}

// Base returns the last nucleotide of the window.
func (mer *Kmer) Base() byte {
	if mer.window != "" {
		return mer.window[len(mer.window)-1]
	}
	return mer.base
}

// Sequence returns the complete window when this is a first k-mer, else the
// single trailing base.
func (mer *Kmer) Sequence() string {
	if mer.window != "" {
		return mer.window
	}
	return string(mer.base)
}

// AddObservation records that this k-mer was seen in a read. A later
// observation for the same read overwrites the earlier one.
func (mer *Kmer) AddObservation(read uint64, offset int, strand Strand) {
	mer.observations[read] = Observation{Offset: offset, Strand: strand}
}

// Observations returns all observations keyed by read identifier.
func (mer *Kmer) Observations() map[uint64]Observation {
	return mer.observations
}

// Count returns how many reads this k-mer was observed in.
func (mer *Kmer) Count() int {
	return len(mer.observations)
}

// AddTransition records that this k-mer was followed by a window whose last
// nucleotide is next.
func (mer *Kmer) AddTransition(next byte) {
	mer.transitions[next]++
}

// TransitionCount returns how many times this k-mer transitioned to a window
// ending in next.
func (mer *Kmer) TransitionCount(next byte) int {
	return mer.transitions[next]
}
