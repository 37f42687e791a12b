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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shenwei356/xopen"
)

// GraphWriter emits one component graph in DOT format.
type GraphWriter struct {
	g         *ComponentGraph
	filename  string
	directory string
}

// NewGraphWriter returns a writer that writes g to directory/filename.
func NewGraphWriter(g *ComponentGraph, filename, directory string) *GraphWriter {
	return &GraphWriter{g: g, filename: filename, directory: directory}
}

// Write creates the target directory if needed and writes the graph.
func (w *GraphWriter) Write() error {
	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return err
	}
	outfh, err := xopen.Wopen(filepath.Join(w.directory, w.filename))
	if err != nil {
		return err
	}
	defer outfh.Close()

	return w.writeTo(outfh)
}

func (w *GraphWriter) writeTo(out io.Writer) error {
	fmt.Fprintln(out, "digraph G {")
	fmt.Fprintln(out, "\trankdir=LR;")

	for _, v := range w.g.Vertices() {
		n := w.g.Node(v)
		coverage := 0
		for _, mer := range n.Kmers() {
			coverage += mer.Count()
		}
		kmers := n.KmerCount()
		fmt.Fprintf(out, "%d [label=\"%s: kmers(%d), avg coverage(%g)\"];\n",
			n.ID(), n.Name(), kmers, float64(coverage)/float64(kmers))
	}

	for _, e := range w.g.Edges() {
		fmt.Fprintf(out, "%d->%d [label=\"%d\"];\n",
			w.g.Node(e.From).ID(), w.g.Node(e.To).ID(), e.Edge.Weight())
	}

	_, err := fmt.Fprintln(out, "}")
	return err
}
