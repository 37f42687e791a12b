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

// Lookup is a bidirectional map: each key maps to one value, and every value
// knows the set of keys currently mapping to it. The assembler uses it for
// its fingerprint -> component and read -> component indices.
type Lookup[K comparable, V comparable] struct {
	forward map[K]V
	reverse map[V]map[K]struct{}
}

// NewLookup returns an empty lookup.
func NewLookup[K comparable, V comparable]() *Lookup[K, V] {
	return &Lookup[K, V]{
		forward: make(map[K]V),
		reverse: make(map[V]map[K]struct{}),
	}
}

// Put maps k to v, replacing any earlier mapping of k.
func (l *Lookup[K, V]) Put(k K, v V) {
	if old, ok := l.forward[k]; ok && old != v {
		delete(l.reverse[old], k)
		if len(l.reverse[old]) == 0 {
			delete(l.reverse, old)
		}
	}
	l.forward[k] = v
	if l.reverse[v] == nil {
		l.reverse[v] = make(map[K]struct{})
	}
	l.reverse[v][k] = struct{}{}
}

// Get returns the value mapped by k.
func (l *Lookup[K, V]) Get(k K) (V, bool) {
	v, ok := l.forward[k]
	return v, ok
}

// Contains reports whether k is mapped.
func (l *Lookup[K, V]) Contains(k K) bool {
	_, ok := l.forward[k]
	return ok
}

// KeysOf returns the keys currently mapping to v, in no particular order.
func (l *Lookup[K, V]) KeysOf(v V) []K {
	keys := make([]K, 0, len(l.reverse[v]))
	for k := range l.reverse[v] {
		keys = append(keys, k)
	}
	return keys
}

// CountOf returns how many keys map to v.
func (l *Lookup[K, V]) CountOf(v V) int {
	return len(l.reverse[v])
}

// DeleteKey removes the mapping of k.
func (l *Lookup[K, V]) DeleteKey(k K) {
	v, ok := l.forward[k]
	if !ok {
		return
	}
	delete(l.forward, k)
	delete(l.reverse[v], k)
	if len(l.reverse[v]) == 0 {
		delete(l.reverse, v)
	}
}

// DeleteValue removes v and every key mapping to it.
func (l *Lookup[K, V]) DeleteValue(v V) {
	for k := range l.reverse[v] {
		if l.forward[k] == v {
			delete(l.forward, k)
		}
	}
	delete(l.reverse, v)
}

// Values returns all distinct values, in no particular order.
func (l *Lookup[K, V]) Values() []V {
	values := make([]V, 0, len(l.reverse))
	for v := range l.reverse {
		values = append(values, v)
	}
	return values
}

// Len returns the number of mapped keys.
func (l *Lookup[K, V]) Len() int {
	return len(l.forward)
}
