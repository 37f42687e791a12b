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

func TestLookupPutGet(t *testing.T) {
	l := NewLookup[uint64, string]()
	l.Put(1, "a")
	l.Put(2, "a")
	l.Put(3, "b")

	v, ok := l.Get(1)
	require.True(t, ok)
	require.Equal(t, "a", v)

	require.True(t, l.Contains(2))
	require.False(t, l.Contains(4))

	require.Equal(t, 2, l.CountOf("a"))
	require.Equal(t, 1, l.CountOf("b"))
	require.ElementsMatch(t, []uint64{1, 2}, l.KeysOf("a"))
	require.ElementsMatch(t, []string{"a", "b"}, l.Values())
	require.Equal(t, 3, l.Len())
}

func TestLookupRebind(t *testing.T) {
	l := NewLookup[uint64, string]()
	l.Put(1, "a")
	l.Put(1, "b")

	v, _ := l.Get(1)
	require.Equal(t, "b", v)
	require.Equal(t, 0, l.CountOf("a"))
	require.Equal(t, 1, l.CountOf("b"))
}

func TestLookupDeleteKey(t *testing.T) {
	l := NewLookup[uint64, string]()
	l.Put(1, "a")
	l.Put(2, "a")
	l.DeleteKey(1)

	require.False(t, l.Contains(1))
	require.True(t, l.Contains(2))
	require.Equal(t, 1, l.CountOf("a"))
}

func TestLookupDeleteValue(t *testing.T) {
	l := NewLookup[uint64, string]()
	l.Put(1, "a")
	l.Put(2, "a")
	l.Put(3, "b")
	l.DeleteValue("a")

	require.False(t, l.Contains(1))
	require.False(t, l.Contains(2))
	require.True(t, l.Contains(3))
	require.ElementsMatch(t, []string{"b"}, l.Values())
}
