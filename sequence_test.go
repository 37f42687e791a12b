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

func TestReverseComplementIUPAC(t *testing.T) {
	rc, err := ReverseComplement("ACGTRYSWKMBDHVN")
	require.NoError(t, err)
	require.Equal(t, "NBDHVKMWSRYACGT", rc)
}

func TestReverseComplementInvalidNucleotide(t *testing.T) {
	_, err := ReverseComplement("ACXGT")
	require.ErrorIs(t, err, ErrInvalidNucleotide)
}

func TestNewSequenceUpperCasesAndComplements(t *testing.T) {
	read, err := NewSequence("accgt", "read1", "", "+++++")
	require.NoError(t, err)

	require.Equal(t, "ACCGT", read.Sequence())
	require.Equal(t, "ACGGT", read.ReverseComplement())
	require.Equal(t, 5, read.Len())
	require.Equal(t, "+++++", read.Qual())
}

func TestNewSequenceRejectsInvalidBases(t *testing.T) {
	_, err := NewSequence("ACZT", "read1", "", "")
	require.ErrorIs(t, err, ErrInvalidNucleotide)
}

func TestSequenceIDDefaultsToNameFingerprint(t *testing.T) {
	read, err := NewSequence("ACGT", "read1", "", "")
	require.NoError(t, err)
	require.Equal(t, Fingerprint("read1"), read.ID())

	read.SetID(0x42)
	require.Equal(t, uint64(0x42), read.ID())
}
