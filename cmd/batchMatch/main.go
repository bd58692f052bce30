package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"dnaMatch/pkg/panel"
	"dnaMatch/pkg/report"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flag
var (
	panelPath = flag.String(
		"p",
		"",
		"reference panel .xlsx/.csv/.tsv, default dna_database.xlsx beside the binary",
	)
	sheet = flag.String(
		"sheet",
		"",
		"panel sheet name, default first sheet",
	)
	input = flag.String(
		"i",
		"",
		"query files, comma separated",
	)
	inputDir = flag.String(
		"d",
		"",
		"dir of query files",
	)
	output = flag.String(
		"o",
		"",
		"output xlsx, a .txt table is written beside it",
	)
	top = flag.Int(
		"top",
		0,
		"ranked hits per query in Rank sheet, default 5",
	)

	paramFlags = report.RegisterFlags(flag.CommandLine, report.ExampleParams)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *output == "" || (*input == "" && *inputDir == "") {
		flag.PrintDefaults()
		log.Fatal("-o and -i/-d are required")
	}
	if *panelPath == "" {
		*panelPath = filepath.Join(exPath, "dna_database.xlsx")
	}
	if !osUtil.FileExists(*panelPath) {
		log.Fatalf("panel not found: %s", *panelPath)
	}
	if *top > 0 {
		TopCount = *top
	}

	var (
		params     = simpleUtil.HandleError(paramFlags.Params())
		statistics = simpleUtil.HandleError(report.Calculate(params))
		records    = simpleUtil.HandleError(panel.LoadSheet(*panelPath, *sheet))
		queries    = simpleUtil.HandleError(ListQueries(*input, *inputDir))
	)
	if len(queries) == 0 {
		log.Fatal("no query files found")
	}
	slog.Info("batch", "panel", *panelPath, "records", len(records), "queries", len(queries))

	results := RunBatch(queries, records, statistics, TopCount)
	summary := simpleUtil.HandleError(Summarize(*panelPath, len(records), results))

	simpleUtil.CheckErr(os.MkdirAll(filepath.Dir(*output), 0755))
	WriteText(textPath(*output), results)
	WriteResult(*output, results, &summary)
}
