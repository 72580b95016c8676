package main

import (
	"flag"

	"colourizer/pkg/karyotype"

	"github.com/liserjrqlxue/version"
)

// flag
var (
	input = flag.String(
		"i",
		"asm.karyotype",
		"input karyotype path, .gz accepted",
	)
	good = flag.String(
		"g",
		"good_contigs.txt",
		"good contig name list, one name per line",
	)
	output = flag.String(
		"o",
		"asm.karyotype2",
		"output karyotype path",
	)
	from = flag.String(
		"from",
		karyotype.DefaultFrom,
		"colour token to replace on matching lines",
	)
	to = flag.String(
		"to",
		karyotype.DefaultTo,
		"replacement colour token",
	)
	summary = flag.String(
		"summary",
		"",
		"write per-contig summary xlsx",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()

	var rc = karyotype.NewRecolourizer(karyotype.LoadContigs(*good))
	rc.From = *from
	rc.To = *to

	rc.RecolourFile(*input, *output)

	if *summary != "" {
		CreateSummary(*summary, rc)
	}
}
