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

// SequenceNode is an ordered run of k-mers forming one unambiguous chain in
// a component graph. Every k-mer after the first extends the previous window
// by one base, so the node's full sequence has length k + kmerCount - 1.
type SequenceNode struct {
	id    int
	name  string
	kmers []*Kmer
	index map[uint64]int // fingerprint -> position
}

// NewSequenceNode returns an empty node.
func NewSequenceNode(id int, name string) *SequenceNode {
	return &SequenceNode{
		id:    id,
		name:  name,
		index: make(map[uint64]int),
	}
}

// ID returns the node identifier.
func (n *SequenceNode) ID() int {
	return n.id
}

// SetID replaces the node identifier. Used when a node is absorbed into
// another component and must not collide with existing vertex ids.
func (n *SequenceNode) SetID(id int) {
	n.id = id
}

// Name returns the human-readable name of this node, usually the name of the
// read that created it.
func (n *SequenceNode) Name() string {
	return n.name
}

// SetName replaces the node name.
func (n *SequenceNode) SetName(name string) {
	n.name = name
}

// Append adds a k-mer at the end of the node.
func (n *SequenceNode) Append(mer *Kmer) {
	n.kmers = append(n.kmers, mer)
	n.index[mer.Fingerprint()] = len(n.kmers) - 1
}

// InsertAt inserts a k-mer at position i and re-indexes every k-mer at or
// after it.
func (n *SequenceNode) InsertAt(mer *Kmer, i int) {
	n.kmers = append(n.kmers, nil)
	copy(n.kmers[i+1:], n.kmers[i:])
	n.kmers[i] = mer
	for j := i; j < len(n.kmers); j++ {
		n.index[n.kmers[j].Fingerprint()] = j
	}
}

// MergeFrom prepends the k-mers of other, preserving their order, then
// re-indexes the node.
func (n *SequenceNode) MergeFrom(other *SequenceNode) {
	merged := make([]*Kmer, 0, len(other.kmers)+len(n.kmers))
	merged = append(merged, other.kmers...)
	merged = append(merged, n.kmers...)
	n.kmers = merged
	for i, mer := range n.kmers {
		n.index[mer.Fingerprint()] = i
	}
}

// Find returns the position of the k-mer with the given fingerprint.
func (n *SequenceNode) Find(fingerprint uint64) (int, bool) {
	i, ok := n.index[fingerprint]
	return i, ok
}

// Kmer returns the k-mer at position i.
func (n *SequenceNode) Kmer(i int) *Kmer {
	return n.kmers[i]
}

// Kmers returns the ordered k-mers of this node.
func (n *SequenceNode) Kmers() []*Kmer {
	return n.kmers
}

// KmerCount returns the number of k-mers in this node.
func (n *SequenceNode) KmerCount() int {
	return len(n.kmers)
}

// Sequence returns the tail sequence of this node: the trailing base of
// every k-mer, excluding the leading window of the first k-mer.
func (n *SequenceNode) Sequence() string {
	var b strings.Builder
	for _, mer := range n.kmers {
		b.WriteByte(mer.Base())
	}
	return b.String()
}

// FullSequence returns the complete sequence of this node: the first k-mer's
// window followed by the trailing base of every later k-mer.
func (n *SequenceNode) FullSequence() string {
	if len(n.kmers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.kmers[0].Sequence())
	for _, mer := range n.kmers[1:] {
		b.WriteByte(mer.Base())
	}
	return b.String()
}
