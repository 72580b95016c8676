package karyotype

import (
	"os"
	"testing"
)

func TestLoadContigs(t *testing.T) {
	tmp := "tmp_good_contigs.txt"
	os.WriteFile(tmp, []byte("tig1\ntig2 \ntig3\t\r\n\ntig1\n"), 0644)
	defer func() { _ = os.Remove(tmp) }()

	contigs := LoadContigs(tmp)
	if len(contigs) != 3 {
		t.Fatalf("LoadContigs: %v", contigs)
	}
	for _, name := range []string{"tig1", "tig2", "tig3"} {
		if !contigs[name] {
			t.Fatalf("missing %q in %v", name, contigs)
		}
	}
	if contigs["tig2 "] {
		t.Fatal("trailing whitespace not stripped")
	}
}

func TestContig(t *testing.T) {
	line := Line{Raw: "chr - tig00000001 tig1 0 1000 vvlgrey\n"}
	contig, err := line.Contig()
	if err != nil || contig != "tig1" {
		t.Fatalf("Contig() = %q, %v", contig, err)
	}

	if _, err := (Line{Raw: "chr - tig1\n"}).Contig(); err == nil {
		t.Fatal("expected error for 3-field line")
	}
}
