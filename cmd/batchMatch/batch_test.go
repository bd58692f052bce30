package main

import (
	"os"
	"path/filepath"
	"testing"

	"dnaMatch/pkg/matcher"
	"dnaMatch/pkg/report"

	"github.com/xuri/excelize/v2"
)

var records = []matcher.Record{
	{Name: "alice", Sequence: "ACGTACGT"},
	{Name: "bob", Sequence: "ACGTACGA"},
	{Name: "carol", Sequence: "TTTTTTTT"},
}

func writeQueries(t *testing.T, queries map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, seq := range queries {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(seq), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListQueries(t *testing.T) {
	dir := writeQueries(t, map[string]string{"q1.txt": "A", "q2.fa": ">q2\nA\n", ".hidden": "A"})
	paths, err := ListQueries(" extra.txt, ,", dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 || paths[0] != "extra.txt" {
		t.Fatalf("unexpected query list %v", paths)
	}
	if _, err := ListQueries("", filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestRunBatch(t *testing.T) {
	dir := writeQueries(t, map[string]string{
		"a.txt": "ACGTACGT\n",
		"b.fa":  ">b\nACGT\nACGA\n",
		"c.txt": "NNNNNNNN",
	})
	paths := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.fa"),
		filepath.Join(dir, "c.txt"),
		filepath.Join(dir, "missing.txt"),
	}
	results := RunBatch(paths, records, report.Statistics{RMP: 0.34}, 2)
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, want := range []string{"alice", "bob", ""} {
		r := results[i]
		if r.Index != i || r.Err != nil {
			t.Fatalf("result %d: %+v", i, r)
		}
		if r.Report.Name() != want {
			t.Fatalf("result %d best match %q, want %q", i, r.Report.Name(), want)
		}
		if r.Report.RMP != 0.34 {
			t.Fatalf("statistics not merged: %+v", r.Report)
		}
		if len(r.Top) != 2 {
			t.Fatalf("result %d has %d ranked hits, want 2", i, len(r.Top))
		}
	}
	if results[1].Report.Query != "b" {
		t.Fatalf("query name = %q, want b", results[1].Report.Query)
	}
	if results[3].Err == nil {
		t.Fatal("missing query file should carry an error")
	}

	summary, err := Summarize("panel.xlsx", len(records), results)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Queries != 4 || summary.Matched != 2 || summary.Unmatched != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Mean != (100.0+100.0+0)/3 || summary.Median != 100 {
		t.Fatalf("unexpected percentages %+v", summary)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary, err := Summarize("panel.xlsx", 0, nil)
	if err != nil || summary.Queries != 0 || summary.Mean != 0 {
		t.Fatalf("empty summary = %+v, %v", summary, err)
	}
}

func TestWriteResult(t *testing.T) {
	dir := writeQueries(t, map[string]string{"a.txt": "ACGTACGA"})
	results := RunBatch([]string{filepath.Join(dir, "a.txt")}, records, report.Statistics{}, TopCount)
	summary, err := Summarize("panel.xlsx", len(records), results)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "result.xlsx")
	WriteResult(path, results, &summary)
	WriteText(textPath(path), results)

	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(MatchSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][0] != "a" || rows[1][1] != "bob" {
		t.Fatalf("unexpected Match sheet %v", rows)
	}
	rows, err = xlsx.GetRows(RankSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+len(records) {
		t.Fatalf("Rank sheet has %d rows, want %d", len(rows), 1+len(records))
	}
	rows, err = xlsx.GetRows(SummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][3] != "1" {
		t.Fatalf("unexpected Summary sheet %v", rows)
	}
	if _, err := os.Stat(filepath.Join(dir, "result.txt")); err != nil {
		t.Fatal(err)
	}
}

func TestRowCell(t *testing.T) {
	for row, want := range map[int]string{1: "A1", 2: "A2", 17: "A17"} {
		if got := rowCell(row); got != want {
			t.Fatalf("rowCell(%d) = %q, want %q", row, got, want)
		}
	}
}
