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

// WindowIterator walks the successive k-length windows of a sequence.
type WindowIterator struct {
	s   string
	k   int
	idx int
}

// NewWindowIterator returns an iterator over the k-length windows of s.
func NewWindowIterator(s string, k int) (*WindowIterator, error) {
	if k < 1 {
		return nil, ErrKmerLength
	}
	if len(s) < k {
		return nil, ErrShortSeq
	}
	return &WindowIterator{s: s, k: k}, nil
}

// Next returns the next window, its fingerprint, and the offset of the
// window's last base in the sequence. ok is false when the iterator is
// exhausted.
func (iter *WindowIterator) Next() (window string, fingerprint uint64, end int, ok bool) {
	if iter.idx+iter.k > len(iter.s) {
		return "", 0, 0, false
	}
	window = iter.s[iter.idx : iter.idx+iter.k]
	end = iter.idx + iter.k - 1
	iter.idx++
	return window, Fingerprint(window), end, true
}
