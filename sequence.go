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
	"strings"

	"github.com/pkg/errors"
)

// iupacComplement maps every IUPAC nucleotide code to its complement.
// Sequences are upper-cased before complementing, so only upper-case codes
// appear here.
var iupacComplement = map[byte]byte{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

// ReverseComplement returns the IUPAC reverse complement of an upper-cased
// sequence. Any byte outside the IUPAC alphabet yields ErrInvalidNucleotide.
func ReverseComplement(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := len(s) - 1; i >= 0; i-- {
		c, ok := iupacComplement[s[i]]
		if !ok {
			return "", errors.Wrapf(ErrInvalidNucleotide, "base %q", s[i])
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// Sequence is one sequencing read: name, optional comment, the upper-cased
// nucleotide sequence, its precomputed reverse complement, and an optional
// quality string. The quality string is stored but otherwise ignored.
type Sequence struct {
	name     string
	comment  string
	sequence string
	reverse  string
	qual     string
	id       uint64
}

// NewSequence builds a sequence record. The sequence is upper-cased and its
// reverse complement computed eagerly; a non-IUPAC byte fails the record.
// The read identifier defaults to the fingerprint of the name.
func NewSequence(sequence, name, comment, qual string) (*Sequence, error) {
	upper := strings.ToUpper(sequence)
	reverse, err := ReverseComplement(upper)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return &Sequence{
		name:     name,
		comment:  comment,
		sequence: upper,
		reverse:  reverse,
		qual:     qual,
		id:       Fingerprint(name),
	}, nil
}

// Name returns the record name.
func (s *Sequence) Name() string {
	return s.name
}

// Comment returns the record comment.
func (s *Sequence) Comment() string {
	return s.comment
}

// Sequence returns the upper-cased sequence.
func (s *Sequence) Sequence() string {
	return s.sequence
}

// ReverseComplement returns the precomputed reverse complement.
func (s *Sequence) ReverseComplement() string {
	return s.reverse
}

// Qual returns the quality string.
func (s *Sequence) Qual() string {
	return s.qual
}

// Len returns the number of bases.
func (s *Sequence) Len() int {
	return len(s.sequence)
}

// ID returns the numeric read identifier.
func (s *Sequence) ID() uint64 {
	return s.id
}

// SetID overrides the generated read identifier.
func (s *Sequence) SetID(id uint64) {
	s.id = id
}
