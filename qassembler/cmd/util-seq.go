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

package cmd

import (
	"io"

	"github.com/qassembler/qassembler"
	"github.com/shenwei356/bio/seqio/fastx"
)

// eachSequence streams the FASTA/FASTQ records of file (plain or gzipped)
// through fn and returns the number of records handed over. Records that
// fail reverse complementing (non-IUPAC bases) are logged and skipped. fn
// returning false stops the stream early.
func eachSequence(file string, fn func(*qassembler.Sequence) bool) (int, error) {
	reader, err := fastx.NewDefaultReader(file)
	if err != nil {
		return 0, err
	}

	var n int
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return n, err
		}

		read, err := qassembler.NewSequence(
			string(record.Seq.Seq),
			string(record.Name),
			"",
			string(record.Seq.Qual),
		)
		if err != nil {
			log.Errorf("skipping read: %s", err)
			continue
		}

		n++
		if !fn(read) {
			break
		}
	}

	return n, nil
}
