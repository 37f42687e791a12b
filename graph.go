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

	"github.com/pkg/errors"
)

// GraphEdge is one directed edge of a component graph, identified by the
// vertex ids it connects.
type GraphEdge struct {
	From, To int
	Edge     *WeightedEdge
}

// ComponentGraph is one weakly-connected directed multigraph whose vertices
// are sequence nodes. Between any ordered vertex pair there is at most one
// edge; parallel inserts increment the edge weight instead. A
// fingerprint -> vertex map partitions all k-mers across the vertices.
type ComponentGraph struct {
	id         int
	nextVertex int

	nodes map[int]*SequenceNode
	out   map[int]map[int]*WeightedEdge
	in    map[int]map[int]*WeightedEdge

	fingerprints map[uint64]int // fingerprint -> vertex id
}

// NewComponentGraph returns an empty component graph with the given
// identifier.
func NewComponentGraph(id int) *ComponentGraph {
	return &ComponentGraph{
		id:           id,
		nodes:        make(map[int]*SequenceNode),
		out:          make(map[int]map[int]*WeightedEdge),
		in:           make(map[int]map[int]*WeightedEdge),
		fingerprints: make(map[uint64]int),
	}
}

// ID returns the graph identifier.
func (g *ComponentGraph) ID() int {
	return g.id
}

func (g *ComponentGraph) nextVertexID() int {
	g.nextVertex++
	return g.nextVertex
}

func (g *ComponentGraph) addVertex(n *SequenceNode) int {
	g.nodes[n.ID()] = n
	return n.ID()
}

// CreateVertex adds a vertex holding a single k-mer that records only its
// trailing base.
func (g *ComponentGraph) CreateVertex(fingerprint uint64, base byte, name string, read uint64, offset int, strand Strand) int {
	n := NewSequenceNode(g.nextVertexID(), name)
	n.Append(NewKmer(fingerprint, base, read, offset, strand))
	v := g.addVertex(n)
	g.fingerprints[fingerprint] = v
	return v
}

// CreateFirstVertex adds a vertex holding a first k-mer that stores its
// complete window.
func (g *ComponentGraph) CreateFirstVertex(fingerprint uint64, window string, name string, read uint64, offset int, strand Strand) int {
	n := NewSequenceNode(g.nextVertexID(), name)
	n.Append(NewFirstKmer(fingerprint, window, read, offset, strand))
	v := g.addVertex(n)
	g.fingerprints[fingerprint] = v
	return v
}

// CreateVertexFrom adds a vertex backed by an existing sequence node, used
// when absorbing another component. The node gets a fresh vertex id so it
// cannot collide with vertices already in this graph, and all of its
// fingerprints are registered here.
func (g *ComponentGraph) CreateVertexFrom(n *SequenceNode) int {
	n.SetID(g.nextVertexID())
	v := g.addVertex(n)
	for _, mer := range n.Kmers() {
		g.fingerprints[mer.Fingerprint()] = v
	}
	return v
}

// VertexOf returns the vertex holding the k-mer with the given fingerprint.
func (g *ComponentGraph) VertexOf(fingerprint uint64) (int, bool) {
	v, ok := g.fingerprints[fingerprint]
	return v, ok
}

func (g *ComponentGraph) setVertexOf(fingerprint uint64, v int) {
	g.fingerprints[fingerprint] = v
}

// Node returns the sequence node behind a vertex.
func (g *ComponentGraph) Node(v int) *SequenceNode {
	return g.nodes[v]
}

// Edge returns the edge u -> v if present.
func (g *ComponentGraph) Edge(u, v int) (*WeightedEdge, bool) {
	e, ok := g.out[u][v]
	return e, ok
}

// insertEdge adds e as the edge u -> v if no edge exists there yet. It
// reports whether the edge was inserted.
func (g *ComponentGraph) insertEdge(u, v int, e *WeightedEdge) bool {
	if _, ok := g.out[u][v]; ok {
		return false
	}
	if g.out[u] == nil {
		g.out[u] = make(map[int]*WeightedEdge)
	}
	if g.in[v] == nil {
		g.in[v] = make(map[int]*WeightedEdge)
	}
	g.out[u][v] = e
	g.in[v][u] = e
	return true
}

// AddEdge adds an edge u -> v with weight 1, or increments the weight of
// the existing edge.
func (g *ComponentGraph) AddEdge(u, v int) *WeightedEdge {
	return g.AddEdgeWith(u, v, NewWeightedEdge())
}

// AddEdgeWith adds an existing weighted edge between u and v, or increments
// the weight of the edge already there.
func (g *ComponentGraph) AddEdgeWith(u, v int, e *WeightedEdge) *WeightedEdge {
	if !g.insertEdge(u, v, e) {
		existing := g.out[u][v]
		existing.Increase(1)
		return existing
	}
	return e
}

// InDegree returns the number of edges entering v, including consumed ones.
func (g *ComponentGraph) InDegree(v int) int {
	return len(g.in[v])
}

// OutDegree returns the number of edges leaving v, including consumed ones.
func (g *ComponentGraph) OutDegree(v int) int {
	return len(g.out[v])
}

// InEdges returns the edges entering v, ordered by source vertex id.
func (g *ComponentGraph) InEdges(v int) []GraphEdge {
	edges := make([]GraphEdge, 0, len(g.in[v]))
	for u, e := range g.in[v] {
		edges = append(edges, GraphEdge{From: u, To: v, Edge: e})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].From < edges[j].From })
	return edges
}

// OutEdges returns the edges leaving v, ordered by target vertex id.
func (g *ComponentGraph) OutEdges(v int) []GraphEdge {
	edges := make([]GraphEdge, 0, len(g.out[v]))
	for w, e := range g.out[v] {
		edges = append(edges, GraphEdge{From: v, To: w, Edge: e})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	return edges
}

// removeVertex disconnects v and drops it from the graph. Fingerprints
// pointing at v must have been re-targeted by the caller beforehand.
func (g *ComponentGraph) removeVertex(v int) {
	for u := range g.in[v] {
		delete(g.out[u], v)
	}
	for w := range g.out[v] {
		delete(g.in[w], v)
	}
	delete(g.in, v)
	delete(g.out, v)
	delete(g.nodes, v)
}

// Split partitions vertex v at position p: k-mers [0, p) go to the front
// half, k-mers [p, end) to the back half. The two halves are joined by an
// edge whose weight is the number of times the transition across the split
// point was observed. Splitting at position 0 or at the end is a no-op that
// returns v twice.
//
// Each half reuses an existing neighbour of v when that neighbour is
// unambiguously chained to v (a single in-edge from a vertex with a single
// out-edge, or the mirror on the out side); otherwise a fresh vertex is
// created and v's edges on that side are re-targeted to it.
func (g *ComponentGraph) Split(v int, p int) (int, int) {
	n := g.Node(v)
	if p == 0 || p == n.KmerCount() {
		return v, v
	}

	bridge := NewWeightedEdge()
	front := g.frontDestination(v)
	back := g.backDestination(v)

	// weight the bridge with the number of observed transitions across the
	// split point
	cur := n.Kmer(p)
	prev := n.Kmer(p - 1)
	bridge.SetWeight(uint64(prev.TransitionCount(cur.Base())))
	g.insertEdge(front, back, bridge)

	for i, mer := range n.Kmers() {
		if i < p {
			g.Node(front).Append(mer)
			g.setVertexOf(mer.Fingerprint(), front)
		} else {
			g.Node(back).InsertAt(mer, i-p)
			g.setVertexOf(mer.Fingerprint(), back)
		}
	}

	g.removeVertex(v)
	return front, back
}

// frontDestination picks the vertex that receives the leading half of a
// split: the sole in-neighbour when it is unambiguously chained to v, else a
// fresh vertex that inherits all in-edges of v.
func (g *ComponentGraph) frontDestination(v int) int {
	if g.InDegree(v) == 1 {
		for u := range g.in[v] {
			if g.OutDegree(u) == 1 {
				return u
			}
		}
	}
	front := g.addVertex(NewSequenceNode(g.nextVertexID(), g.Node(v).Name()))
	for _, in := range g.InEdges(v) {
		g.insertEdge(in.From, front, in.Edge)
	}
	return front
}

// backDestination is the mirror of frontDestination for the trailing half.
func (g *ComponentGraph) backDestination(v int) int {
	if g.OutDegree(v) == 1 {
		for w := range g.out[v] {
			if g.InDegree(w) == 1 {
				return w
			}
		}
	}
	back := g.addVertex(NewSequenceNode(g.nextVertexID(), g.Node(v).Name()))
	for _, out := range g.OutEdges(v) {
		g.insertEdge(back, out.To, out.Edge)
	}
	return back
}

// addEdgeOrMerge links src to dst, or merges src into dst when the two are
// unambiguously chained: either they share their only out/in edge, or
// neither has any edge on the joining side. Returns the vertex the chain
// continues from.
func (g *ComponentGraph) addEdgeOrMerge(src, dst int) int {
	neighbours := g.OutDegree(src) == 1 && g.InDegree(dst) == 1
	if neighbours {
		_, neighbours = g.Edge(src, dst)
	}
	noNeighbours := g.OutDegree(src) == 0 && g.InDegree(dst) == 0

	if (neighbours || noNeighbours) && src != dst {
		g.Node(dst).MergeFrom(g.Node(src))
		for _, mer := range g.Node(src).Kmers() {
			g.setVertexOf(mer.Fingerprint(), dst)
		}
		for _, in := range g.InEdges(src) {
			g.insertEdge(in.From, dst, in.Edge)
		}
		g.removeVertex(src)
		return dst
	}

	g.AddEdge(src, dst)
	return dst
}

// AddEdgeBetween splits src and dst at the given positions (each position
// becomes the first k-mer of the back half), then links or merges the front
// half of src with the back half of dst. This is the primitive behind every
// observed k-mer pair.
func (g *ComponentGraph) AddEdgeBetween(src, dst int, srcPos, dstPos int) {
	front, _ := g.Split(src, srcPos)
	_, back := g.Split(dst, dstPos)
	g.addEdgeOrMerge(front, back)
}

// MergeFrom absorbs all vertices and edges of other into this graph. Nodes
// are carried over wholesale (with fresh vertex ids) and edges keep their
// weighted-edge objects. An edgeless source graph must hold exactly one
// vertex, anything else is an invalid state.
func (g *ComponentGraph) MergeFrom(other *ComponentGraph) error {
	if other.NumEdges() > 0 {
		oldToNew := make(map[int]int)
		for _, e := range other.Edges() {
			if _, ok := oldToNew[e.From]; !ok {
				oldToNew[e.From] = g.CreateVertexFrom(other.Node(e.From))
			}
			if _, ok := oldToNew[e.To]; !ok {
				oldToNew[e.To] = g.CreateVertexFrom(other.Node(e.To))
			}
			g.AddEdgeWith(oldToNew[e.From], oldToNew[e.To], e.Edge)
		}
		return nil
	}
	if other.NumVertices() != 1 {
		return errors.Wrap(ErrInvalidGraphState,
			"graph to merge from has no edges but more than one vertex")
	}
	g.CreateVertexFrom(other.Node(other.Vertices()[0]))
	return nil
}

// RemoveSmallEdges drops every edge with weight at or below the threshold
// and returns the number of edges removed.
func (g *ComponentGraph) RemoveSmallEdges(threshold uint64) int {
	removed := 0
	for _, e := range g.Edges() {
		if e.Edge.Weight() <= threshold {
			delete(g.out[e.From], e.To)
			delete(g.in[e.To], e.From)
			removed++
		}
	}
	return removed
}

// LockEdgeWeights snapshots the weight of every edge.
func (g *ComponentGraph) LockEdgeWeights() {
	for _, e := range g.Edges() {
		e.Edge.Lock()
	}
}

// ResetEdgeWeights restores every edge weight to its locked snapshot.
func (g *ComponentGraph) ResetEdgeWeights() {
	for _, e := range g.Edges() {
		e.Edge.Reset()
	}
}

// NumVertices returns the number of vertices.
func (g *ComponentGraph) NumVertices() int {
	return len(g.nodes)
}

// NumEdges returns the number of edges.
func (g *ComponentGraph) NumEdges() int {
	total := 0
	for _, targets := range g.out {
		total += len(targets)
	}
	return total
}

// Vertices returns all vertex ids in ascending order.
func (g *ComponentGraph) Vertices() []int {
	vs := make([]int, 0, len(g.nodes))
	for v := range g.nodes {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

// Edges returns all edges ordered by (source, target) vertex id. The stable
// order keeps merging, locking, and output deterministic across runs.
func (g *ComponentGraph) Edges() []GraphEdge {
	edges := make([]GraphEdge, 0, g.NumEdges())
	for u, targets := range g.out {
		for v, e := range targets {
			edges = append(edges, GraphEdge{From: u, To: v, Edge: e})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
