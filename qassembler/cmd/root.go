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
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/qassembler/qassembler"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	prettytable "github.com/tatsushid/go-prettytable"
)

// VERSION of qassembler
const VERSION = "0.2.0"

// RootCmd is the one and only command: build the graph from reads, then
// optionally filter, dump, walk, and score it.
var RootCmd = &cobra.Command{
	Use:   "qassembler",
	Short: "de novo short-read assembler over compressed de Bruijn graphs",
	Long: fmt.Sprintf(`qassembler - de novo short-read assembler

Reads FASTA/FASTQ sequences (plain or gzipped), builds compressed de Bruijn
graphs over k-mers, enumerates candidate assembled paths through each
component graph, and optionally scores each path's likelihood under the
Markov model defined by the edge weights.

Version: %s

`, VERSION),
	Run: func(cmd *cobra.Command, args []string) {
		opt := parseOptions(cmd)
		seq.ValidateSeq = false

		var guide *qassembler.PreHash
		if opt.PreHash {
			log.Info("pre-hashing reads ...")
			guide = qassembler.NewPreHash(opt.KmerSize)
			n, err := eachSequence(opt.InputSequences, func(read *qassembler.Sequence) bool {
				guide.AddRead(read)
				return true
			})
			checkError(err)
			log.Infof("pre-hashed %s reads", humanize.Comma(int64(n)))
		}

		asm := buildAssembly(opt, guide)

		if opt.MinimumBases > 0 {
			log.Infof("removing single-node graphs shorter than %d bases", opt.MinimumBases)
			asm.RemoveGraphsShorterThan(opt.MinimumBases)
			log.Infof("%d graphs remain after removal", asm.NumComponents())
		}

		// the pre-hash already filtered low-support k-mers during
		// construction, the aggressive post-filter only applies without it
		if opt.EdgeThreshold > 0 && !opt.PreHash {
			log.Infof("removing edges with weight at or below %d", opt.EdgeThreshold)
			asm.RemoveEdgesBelowThreshold(uint64(opt.EdgeThreshold))
		}

		if opt.Stats {
			printStats(asm)
		}

		if opt.PrintGraphs {
			log.Infof("writing graphs to directory %s", opt.GraphDir)
			for _, g := range asm.Components() {
				writer := qassembler.NewGraphWriter(g, fmt.Sprintf("%d.dot", g.ID()), opt.GraphDir)
				checkError(writer.Write())
			}
		}

		if opt.PrintSequences {
			writeSequences(opt, asm)
		}
	},
}

// Options are the validated command line arguments.
type Options struct {
	InputSequences string
	KmerSize       int
	PreHash        bool
	EdgeThreshold  int
	MinimumBases   int
	PrintGraphs    bool
	GraphDir       string
	PrintSequences bool
	SequenceDir    string
	PathMethod     string
	Epsilon        float64
	MinimumLength  int
	AbundanceMthd  string
	Stats          bool
}

func parseOptions(cmd *cobra.Command) *Options {
	opt := &Options{
		InputSequences: expandPath(getFlagString(cmd, "input-sequences")),
		KmerSize:       getFlagPositiveInt(cmd, "kmer-size"),
		PreHash:        getFlagBool(cmd, "pre-hash"),
		EdgeThreshold:  getFlagNonNegativeInt(cmd, "aggressive-edge-removal"),
		MinimumBases:   getFlagNonNegativeInt(cmd, "minimum-bases"),
		PrintGraphs:    getFlagBool(cmd, "print-graphs"),
		GraphDir:       expandPath(getFlagString(cmd, "graph-dir")),
		PrintSequences: getFlagBool(cmd, "sequences"),
		SequenceDir:    expandPath(getFlagString(cmd, "sequence-dir")),
		PathMethod:     getFlagString(cmd, "path-method"),
		Epsilon:        getFlagFloat64(cmd, "epsilon"),
		MinimumLength:  getFlagNonNegativeInt(cmd, "minimum-length"),
		AbundanceMthd:  getFlagString(cmd, "abundance-method"),
		Stats:          getFlagBool(cmd, "stats"),
	}

	if opt.InputSequences == "" {
		failWithUsage(cmd, fmt.Errorf("flag -i/--input-sequences is required"))
	}
	if err := checkFile(opt.InputSequences); err != nil {
		failWithUsage(cmd, err)
	}
	if opt.KmerSize%2 == 0 {
		failWithUsage(cmd, errors.Wrapf(qassembler.ErrKmerLength, "k = %d", opt.KmerSize))
	}
	switch opt.PathMethod {
	case "proportional", "markov":
	case "random":
		failWithUsage(cmd, errors.Wrap(qassembler.ErrNotImplemented, "random path builder"))
	default:
		failWithUsage(cmd, fmt.Errorf("path method must be one of proportional, markov or random"))
	}
	switch opt.AbundanceMthd {
	case "", "markov-chain", "forward-algorithm":
	default:
		failWithUsage(cmd, fmt.Errorf("abundance method must be one of markov-chain or forward-algorithm"))
	}

	return opt
}

// buildAssembly streams all reads into a new assembly and locks the edge
// weights. A structural failure aborts the read stream, everything inserted
// so far is kept.
func buildAssembly(opt *Options, guide *qassembler.PreHash) *qassembler.Assembly {
	log.Info("constructing graph ...")
	asm := qassembler.NewGuidedAssembly(opt.KmerSize, false, guide, opt.EdgeThreshold)

	var processed int
	_, err := eachSequence(opt.InputSequences, func(read *qassembler.Sequence) bool {
		if read.Len() < opt.KmerSize {
			log.Warningf("skipping read %s: %d bp is shorter than k", read.Name(), read.Len())
			return true
		}
		if err := asm.AddRead(read); err != nil {
			log.Errorf("giving up on remaining reads: %s", err)
			return false
		}
		processed++
		return true
	})
	checkError(err)

	asm.LockEdgeWeights()
	log.Infof("built %d component graphs from %s reads",
		asm.NumComponents(), humanize.Comma(int64(processed)))
	return asm
}

// writeSequences walks every component, emits the surviving paths as FASTA
// records, and optionally appends an abundance score to each header.
func writeSequences(opt *Options, asm *qassembler.Assembly) {
	log.Infof("generating sequences into directory %s", opt.SequenceDir)
	checkError(os.MkdirAll(opt.SequenceDir, 0755))

	sequenceCount := 0
	for _, g := range asm.Components() {
		var builder qassembler.PathBuilder
		switch opt.PathMethod {
		case "proportional":
			builder = qassembler.NewProportionalPathBuilder(g, opt.Epsilon)
		case "markov":
			builder = qassembler.NewMarkovPathBuilder(g)
		}

		paths := builder.BuildPaths()

		// paths below the reporting thresholds are dropped, duplicates
		// collapse to their first appearance
		seen := make(map[string]struct{})
		var sequences []string
		for _, p := range paths {
			s := p.Sequence()
			if len(s) <= opt.KmerSize {
				continue
			}
			if opt.MinimumLength > 0 && len(s) < opt.MinimumLength {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			sequences = append(sequences, s)
		}

		g.ResetEdgeWeights()

		var abundances map[string]float64
		if opt.AbundanceMthd != "" {
			var estimator qassembler.Abundance
			switch opt.AbundanceMthd {
			case "markov-chain":
				estimator = qassembler.NewMarkovChainAbundance(asm, sequences)
			case "forward-algorithm":
				estimator = qassembler.NewForwardAlgorithmAbundance(asm, sequences)
			}
			var err error
			abundances, err = estimator.ComputeAbundances()
			if err != nil {
				log.Warningf("abundance estimation for graph %d: %s", g.ID(), err)
			}
		}

		outfh, err := xopen.Wopen(filepath.Join(opt.SequenceDir, fmt.Sprintf("%d.fna", g.ID())))
		checkError(err)
		for _, s := range sequences {
			sequenceCount++
			score := ""
			if v, ok := abundances[s]; ok {
				score = fmt.Sprintf(" (%s: %s)", opt.AbundanceMthd,
					strconv.FormatFloat(v, 'g', -1, 64))
			}
			fmt.Fprintf(outfh, ">%d(%dbp)%s\n%s\n\n", sequenceCount, len(s), score, s)
		}
		checkError(outfh.Close())

		log.Infof("generated %d paths for graph %d", len(paths), g.ID())
	}
}

// printStats renders one row per component graph.
func printStats(asm *qassembler.Assembly) {
	tbl, err := prettytable.NewTable(
		prettytable.Column{Header: "graph", AlignRight: true},
		prettytable.Column{Header: "vertices", AlignRight: true},
		prettytable.Column{Header: "edges", AlignRight: true},
		prettytable.Column{Header: "k-mers", AlignRight: true},
		prettytable.Column{Header: "coverage", AlignRight: true},
	)
	checkError(err)
	tbl.Separator = "  "

	for _, g := range asm.Components() {
		kmers := 0
		coverage := 0
		for _, v := range g.Vertices() {
			n := g.Node(v)
			kmers += n.KmerCount()
			for _, mer := range n.Kmers() {
				coverage += mer.Count()
			}
		}
		tbl.AddRow(g.ID(), g.NumVertices(), g.NumEdges(),
			humanize.Comma(int64(kmers)), humanize.Comma(int64(coverage)))
	}

	os.Stdout.Write(tbl.Bytes())
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().StringP("input-sequences", "i", "", "fasta/fastq file containing reads (required)")
	RootCmd.Flags().IntP("kmer-size", "k", 31, "k-mer size, must be odd")
	RootCmd.Flags().BoolP("pre-hash", "p", false, "pre-hash the reads to guide graph construction")
	RootCmd.Flags().IntP("aggressive-edge-removal", "a", 0, "remove edges with weight at or below this threshold after construction")
	RootCmd.Flags().IntP("minimum-bases", "m", 0, "remove graphs that have only one node with a length less than specified")
	RootCmd.Flags().BoolP("print-graphs", "g", false, "write the generated graphs as DOT files")
	RootCmd.Flags().String("graph-dir", "graphs", "directory to dump DOT formatted graphs")
	RootCmd.Flags().BoolP("sequences", "s", false, "generate sequences and print to files")
	RootCmd.Flags().String("sequence-dir", "sequences", "directory to dump reconstructed sequences")
	RootCmd.Flags().String("path-method", "proportional", "method used to generate paths through the graph (one of proportional, markov or random)")
	RootCmd.Flags().Float64P("epsilon", "e", 0.01, "allowable difference between paths during path generation")
	RootCmd.Flags().IntP("minimum-length", "l", 0, "only report sequences longer than the specified length")
	RootCmd.Flags().String("abundance-method", "", "the abundance estimation method (one of markov-chain or forward-algorithm)")
	RootCmd.Flags().Bool("stats", false, "print a per-graph summary table")
}
