package karyotype

import (
	"fmt"
	"strings"
)

// ContigField is the 0-based whitespace-delimited field holding the
// contig identifier in a circos karyotype line.
const ContigField = 3

// Line is one raw line of a karyotype file, terminator included.
type Line struct {
	Raw string
}

func (l Line) Fields() []string {
	return strings.Fields(l.Raw)
}

// Contig returns the contig identifier of the line.
func (l Line) Contig() (string, error) {
	var fields = l.Fields()
	if len(fields) <= ContigField {
		return "", fmt.Errorf("karyotype line has %d fields, need at least %d", len(fields), ContigField+1)
	}
	return fields[ContigField], nil
}
