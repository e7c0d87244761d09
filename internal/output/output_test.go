// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteText(t *testing.T) {
	rows := []Row{
		{ID: "s1", Input: "ACG", Result: "A C G", Complement: "T G C"},
		{ID: "s2", Input: "AT", Output: "AT"},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, rows, true); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != TextHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "s1\tACG\tA C G\tT G C\t" {
		t.Errorf("row 1 = %q", lines[1])
	}

	buf.Reset()
	if err := WriteText(&buf, rows, false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if strings.Contains(buf.String(), TextHeader) {
		t.Errorf("header printed despite header=false")
	}
}

func TestWriteStatsText(t *testing.T) {
	rows := []StatsRow{{ID: "d1", Length: 4, GCContent: 0.5, Palindromic: true, MaxRun: 1}}
	var buf bytes.Buffer
	if err := WriteStatsText(&buf, rows, true); err != nil {
		t.Fatalf("WriteStatsText: %v", err)
	}
	want := StatsHeader + "\nd1\t4\t0.500\ttrue\t1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []Row{{ID: "s1", Input: "A", Complement: "T"}}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var back []Row
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(back) != 1 || back[0].ID != "s1" || back[0].Complement != "T" {
		t.Errorf("round trip = %+v", back)
	}

	buf.Reset()
	if err := WriteJSON(&buf, []Row(nil)); err != nil {
		t.Fatalf("WriteJSON(nil): %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("nil rows should encode as [], got %q", buf.String())
	}
}

func TestWriteFASTA(t *testing.T) {
	long := strings.Repeat("ACGT", 20) // 80 nt, wraps at 60
	rows := []Row{
		{ID: "s1", Output: long},
		{ID: "skipped", Input: "ACGT"}, // no output sequence
	}
	var buf bytes.Buffer
	if err := WriteFASTA(&buf, rows); err != nil {
		t.Fatalf("WriteFASTA: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != ">s1" || len(lines[1]) != 60 || len(lines[2]) != 20 {
		t.Errorf("unexpected FASTA shape: %v", lines)
	}
	if strings.Contains(buf.String(), "skipped") {
		t.Errorf("row without output should be skipped")
	}
}
