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
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Assembly owns all component graphs. It routes read insertion, merges
// components when a k-mer pair bridges two of them, and applies the global
// post-construction filters.
type Assembly struct {
	k             int
	trackReads    bool
	guide         *PreHash
	minEdgeWeight int

	nextGraphID int

	fingerprints *Lookup[uint64, *ComponentGraph]
	forwardReads *Lookup[uint64, *ComponentGraph]
	reverseReads *Lookup[uint64, *ComponentGraph]
}

// NewAssembly returns an assembly over k-length windows without a guide.
func NewAssembly(k int, trackReads bool) *Assembly {
	return NewGuidedAssembly(k, trackReads, nil, 0)
}

// NewGuidedAssembly returns an assembly that consults the guide during
// construction: windows contained in at most minEdgeWeight reads are not
// inserted.
func NewGuidedAssembly(k int, trackReads bool, guide *PreHash, minEdgeWeight int) *Assembly {
	return &Assembly{
		k:             k,
		trackReads:    trackReads,
		guide:         guide,
		minEdgeWeight: minEdgeWeight,
		fingerprints:  NewLookup[uint64, *ComponentGraph](),
		forwardReads:  NewLookup[uint64, *ComponentGraph](),
		reverseReads:  NewLookup[uint64, *ComponentGraph](),
	}
}

// K returns the window length.
func (a *Assembly) K() int {
	return a.k
}

func (a *Assembly) nextID() int {
	id := a.nextGraphID
	a.nextGraphID++
	return id
}

// AddRead inserts a read into the assembly, forward sequence first, then its
// reverse complement. Reads shorter than k are rejected with
// ErrReadTooShort.
func (a *Assembly) AddRead(read *Sequence) error {
	if read.Len() < a.k {
		return errors.Wrapf(ErrReadTooShort, "read %s (%d bp)", read.Name(), read.Len())
	}
	if a.guide != nil {
		if err := a.addGuided(read.Sequence(), read.ID(), read.Name(), Forward); err != nil {
			return err
		}
		return a.addGuided(read.ReverseComplement(), read.ID(), read.Name(), Reverse)
	}
	if err := a.addOriented(read.Sequence(), read.ID(), read.Name(), Forward); err != nil {
		return err
	}
	return a.addOriented(read.ReverseComplement(), read.ID(), read.Name(), Reverse)
}

// addOriented inserts one oriented sequence window pair by window pair.
func (a *Assembly) addOriented(sequence string, read uint64, name string, strand Strand) error {
	upper := strings.ToUpper(sequence)
	if len(upper) == a.k {
		a.addSingleKmer(upper, read, name, strand)
		return nil
	}
	for i := 0; i < len(upper)-a.k; i++ {
		w1 := upper[i : i+a.k]
		w2 := upper[i+1 : i+1+a.k]
		if err := a.insertPair(w1, w2, read, name, strand); err != nil {
			return err
		}
	}
	return nil
}

// addGuided is addOriented with the pre-hash acceptance filter: a window
// pair is inserted only when both windows clear the support threshold; a
// lone clearing window is inserted without an edge.
func (a *Assembly) addGuided(sequence string, read uint64, name string, strand Strand) error {
	upper := strings.ToUpper(sequence)
	if len(upper) == a.k {
		if a.guide.KmerCount(upper) > a.minEdgeWeight {
			a.addSingleKmer(upper, read, name, strand)
		}
		return nil
	}
	for i := 0; i < len(upper)-a.k; i++ {
		w1 := upper[i : i+a.k]
		w2 := upper[i+1 : i+1+a.k]
		first := a.guide.KmerCount(w1) > a.minEdgeWeight
		second := a.guide.KmerCount(w2) > a.minEdgeWeight
		switch {
		case first && second:
			if err := a.insertPair(w1, w2, read, name, strand); err != nil {
				return err
			}
		case first:
			a.addSingleKmer(w1, read, name, strand)
		case second:
			a.addSingleKmer(w2, read, name, strand)
		}
	}
	return nil
}

// addSingleKmer inserts one window with no edges.
func (a *Assembly) addSingleKmer(window string, read uint64, name string, strand Strand) {
	fingerprint := Fingerprint(window)
	g, ok := a.fingerprints.Get(fingerprint)
	if !ok {
		g = NewComponentGraph(a.nextID())
		g.CreateFirstVertex(fingerprint, window, name, read, 0, strand)
	} else {
		v, _ := g.VertexOf(fingerprint)
		pos, _ := g.Node(v).Find(fingerprint)
		g.Node(v).Kmer(pos).AddObservation(read, 0, strand)
	}
	a.addReference(fingerprint, read, strand, g)
}

// findOrCreate resolves the component holding a window, creating a fresh
// single-vertex component when the window is new. Existing windows get an
// observation recorded at offset 0.
func (a *Assembly) findOrCreate(fingerprint uint64, window string, read uint64, name string, strand Strand) *ComponentGraph {
	g, ok := a.fingerprints.Get(fingerprint)
	if !ok {
		g = NewComponentGraph(a.nextID())
		g.CreateFirstVertex(fingerprint, window, name, read, 0, strand)
		return g
	}
	v, _ := g.VertexOf(fingerprint)
	pos, _ := g.Node(v).Find(fingerprint)
	g.Node(v).Kmer(pos).AddObservation(read, 0, strand)
	return g
}

// insertPair inserts one adjacent window pair: resolve or create both
// windows, merge their components when they differ, record the observed
// transition, and link the two vertices unless the windows already share
// one.
func (a *Assembly) insertPair(w1, w2 string, read uint64, name string, strand Strand) error {
	last := w2[len(w2)-1]
	fp1 := Fingerprint(w1)
	fp2 := Fingerprint(w2)

	g1 := a.findOrCreate(fp1, w1, read, name, strand)
	g2 := a.findOrCreate(fp2, w2, read, name, strand)

	g := g1
	if g1 != g2 {
		var err error
		g, err = a.mergeComponents(g1, g2)
		if err != nil {
			return err
		}
	}

	v1, ok := g.VertexOf(fp1)
	if !ok {
		return errors.Wrapf(ErrInvalidGraphState, "fingerprint %#x missing after merge", fp1)
	}
	v2, ok := g.VertexOf(fp2)
	if !ok {
		return errors.Wrapf(ErrInvalidGraphState, "fingerprint %#x missing after merge", fp2)
	}
	p1, _ := g.Node(v1).Find(fp1)
	p2, _ := g.Node(v2).Find(fp2)

	g.Node(v1).Kmer(p1).AddTransition(last)

	// windows in the same vertex are already chained, the transition record
	// above is all that is needed
	if v1 == v2 {
		a.addReference(fp1, read, strand, g)
		a.addReference(fp2, read, strand, g)
		return nil
	}

	g.AddEdgeBetween(v1, v2, p1+1, p2)

	a.addReference(fp1, read, strand, g)
	a.addReference(fp2, read, strand, g)
	return nil
}

// mergeComponents merges the component with fewer vertices into the larger
// one and rewires the assembly indices for everything absorbed.
func (a *Assembly) mergeComponents(g1, g2 *ComponentGraph) (*ComponentGraph, error) {
	from, to := g1, g2
	if g1.NumVertices() > g2.NumVertices() {
		from, to = g2, g1
	}
	if err := to.MergeFrom(from); err != nil {
		return nil, err
	}
	a.updateReferences(from, to)
	return to, nil
}

// updateReferences re-targets every assembly index entry of from to to.
func (a *Assembly) updateReferences(from, to *ComponentGraph) {
	for _, fingerprint := range a.fingerprints.KeysOf(from) {
		a.fingerprints.Put(fingerprint, to)
	}
	a.fingerprints.DeleteValue(from)

	for _, read := range a.forwardReads.KeysOf(from) {
		a.forwardReads.Put(read, to)
	}
	a.forwardReads.DeleteValue(from)

	for _, read := range a.reverseReads.KeysOf(from) {
		a.reverseReads.Put(read, to)
	}
	a.reverseReads.DeleteValue(from)
}

func (a *Assembly) addReference(fingerprint uint64, read uint64, strand Strand, g *ComponentGraph) {
	if a.trackReads {
		if strand == Forward {
			a.forwardReads.Put(read, g)
		} else {
			a.reverseReads.Put(read, g)
		}
	}
	a.fingerprints.Put(fingerprint, g)
}

// Components returns all component graphs ordered by graph id.
func (a *Assembly) Components() []*ComponentGraph {
	graphs := a.fingerprints.Values()
	sort.Slice(graphs, func(i, j int) bool { return graphs[i].ID() < graphs[j].ID() })
	return graphs
}

// NumComponents returns the number of component graphs.
func (a *Assembly) NumComponents() int {
	return len(a.fingerprints.Values())
}

// GraphAndVertexFor resolves the component and vertex holding a
// fingerprint.
func (a *Assembly) GraphAndVertexFor(fingerprint uint64) (*ComponentGraph, int, bool) {
	g, ok := a.fingerprints.Get(fingerprint)
	if !ok {
		return nil, 0, false
	}
	v, ok := g.VertexOf(fingerprint)
	return g, v, ok
}

// ForwardReads returns the read -> component index for the forward strand.
// Populated only when read tracking is enabled.
func (a *Assembly) ForwardReads() *Lookup[uint64, *ComponentGraph] {
	return a.forwardReads
}

// ReverseReads returns the read -> component index for the reverse strand.
func (a *Assembly) ReverseReads() *Lookup[uint64, *ComponentGraph] {
	return a.reverseReads
}

// RemoveGraphsShorterThan drops every single-vertex component whose k-mer
// count plus k is below the threshold.
func (a *Assembly) RemoveGraphsShorterThan(threshold int) {
	for _, g := range a.Components() {
		if g.NumVertices() != 1 {
			continue
		}
		n := g.Node(g.Vertices()[0])
		if n.KmerCount()+a.k < threshold {
			a.fingerprints.DeleteValue(g)
		}
	}
}

// RemoveEdgesBelowThreshold drops edges at or below the weight threshold in
// every component.
func (a *Assembly) RemoveEdgesBelowThreshold(threshold uint64) {
	for _, g := range a.Components() {
		g.RemoveSmallEdges(threshold)
	}
}

// LockEdgeWeights snapshots all edge weights across all components. Call
// after construction so path builders can destructively consume weight.
func (a *Assembly) LockEdgeWeights() {
	for _, g := range a.Components() {
		g.LockEdgeWeights()
	}
}

// ResetEdgeWeights restores all edge weights from their snapshots.
func (a *Assembly) ResetEdgeWeights() {
	for _, g := range a.Components() {
		g.ResetEdgeWeights()
	}
}
