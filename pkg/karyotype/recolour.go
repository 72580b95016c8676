package karyotype

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// Default colour tokens of the recolouring rule.
const (
	DefaultFrom = "vvlgrey"
	DefaultTo   = "red"
)

// Stats counts what one run did.
type Stats struct {
	Lines      int            // input lines consumed
	Matched    int            // lines whose contig is in the good set
	Recoloured int            // matched lines actually changed
	Hits       map[string]int // matched lines per contig
}

// Recolourizer rewrites the colour token of karyotype lines whose
// contig identifier is in the good-contig set.
type Recolourizer struct {
	Contigs map[string]bool
	From    string
	To      string

	Stats Stats
}

func NewRecolourizer(contigs map[string]bool) *Recolourizer {
	return &Recolourizer{
		Contigs: contigs,
		From:    DefaultFrom,
		To:      DefaultTo,
		Stats:   Stats{Hits: make(map[string]int)},
	}
}

// RecolourLine applies the per-line rule to one raw line, terminator
// included. A line whose contig is in the good set gets every
// occurrence of From replaced by To, all other bytes untouched; any
// other line comes back verbatim. Lines with fewer than 4 fields are an
// error.
func (rc *Recolourizer) RecolourLine(raw string) (string, error) {
	var contig, err = Line{Raw: raw}.Contig()
	if err != nil {
		return "", err
	}
	rc.Stats.Lines++
	if !rc.Contigs[contig] {
		return raw, nil
	}
	rc.Stats.Matched++
	rc.Stats.Hits[contig]++
	var recoloured = strings.ReplaceAll(raw, rc.From, rc.To)
	if recoloured != raw {
		rc.Stats.Recoloured++
	}
	return recoloured, nil
}

// Run streams in to out in a single linear pass, one output line per
// input line, in input order. Line terminators pass through as read, so
// CRLF input and a missing final newline survive byte-for-byte.
func (rc *Recolourizer) Run(in io.Reader, out io.Writer) error {
	var (
		reader = bufio.NewReader(in)
		writer = bufio.NewWriter(out)
		lineNo = 0
	)
	for {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			lineNo++
			recoloured, recErr := rc.RecolourLine(raw)
			if recErr != nil {
				return fmt.Errorf("line %d: %w", lineNo, recErr)
			}
			if _, wErr := writer.WriteString(recoloured); wErr != nil {
				return wErr
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
	}
	return writer.Flush()
}

// RecolourFile runs the transform between file paths. An input ending
// in .gz is decompressed on the fly. The output file is truncated; on
// error it may be left incomplete.
func (rc *Recolourizer) RecolourFile(input, output string) {
	var in = osUtil.Open(input)
	defer simpleUtil.DeferClose(in)

	var reader io.Reader = in
	if strings.HasSuffix(input, ".gz") {
		var gz = simpleUtil.HandleError(pgzip.NewReader(in))
		defer simpleUtil.DeferClose(gz)
		reader = gz
	}

	var out = osUtil.Create(output)
	defer simpleUtil.DeferClose(out)

	simpleUtil.CheckErr(rc.Run(reader, out))

	slog.Info(
		"recolour",
		"input", input,
		"output", output,
		"lines", rc.Stats.Lines,
		"matched", rc.Stats.Matched,
		"recoloured", rc.Stats.Recoloured,
	)
}
