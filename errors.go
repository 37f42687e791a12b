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

import "errors"

// ErrReadTooShort means a read shorter than k was handed to the assembler.
var ErrReadTooShort = errors.New("qassembler: read shorter than k")

// ErrInvalidNucleotide means a byte outside the IUPAC nucleotide alphabet
// was found while reverse-complementing a sequence.
var ErrInvalidNucleotide = errors.New("qassembler: non-IUPAC nucleotide")

// ErrKmerLength means an even k-mer length was requested.
var ErrKmerLength = errors.New("qassembler: k-mer length must be odd")

// ErrInvalidGraphState means an internal graph invariant was violated,
// e.g. merging from a component with no edges but more than one vertex.
var ErrInvalidGraphState = errors.New("qassembler: invalid graph state")

// ErrPathSpansGraphs means a path handed to an abundance estimator contains
// k-mers from more than one component graph.
var ErrPathSpansGraphs = errors.New("qassembler: path spans multiple graphs")

// ErrNotImplemented marks declared but unimplemented functionality.
var ErrNotImplemented = errors.New("qassembler: not implemented")

// ErrShortSeq means the sequence is shorter than k.
var ErrShortSeq = errors.New("qassembler: sequence shorter than k")
