package karyotype

import (
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/samber/lo"
)

// LoadContigs loads a good-contig name list, one name per line,
// trailing whitespace stripped. Blank lines are skipped and duplicate
// names collapse into one entry.
func LoadContigs(path string) map[string]bool {
	var names []string
	for _, line := range textUtil.File2Array(path) {
		var name = strings.TrimRight(line, " \t\r")
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return lo.SliceToMap(
		lo.Uniq(names),
		func(name string) (string, bool) {
			return name, true
		},
	)
}
