package main

import (
	"fmt"
	"log"
	"sort"

	"colourizer/pkg/karyotype"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

var SummaryTitle = []string{
	"Contig",
	"Lines",
	"Highlighted",
}

// CreateSummary writes one row per good contig: how many karyotype
// lines carried it and whether any got highlighted.
func CreateSummary(path string, rc *karyotype.Recolourizer) {
	var (
		xlsx  = excelize.NewFile()
		sheet = "Summary"
	)

	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	xlsx.SetSheetRow(sheet, "A1", &SummaryTitle)

	var contigs = lo.Keys(rc.Contigs)
	sort.Strings(contigs)
	for i, contig := range contigs {
		var hits = rc.Stats.Hits[contig]
		xlsx.SetSheetRow(
			sheet,
			fmt.Sprintf("A%d", i+2),
			&[]any{contig, hits, hits > 0},
		)
	}

	log.Printf("SaveAs(%s)", path)
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
