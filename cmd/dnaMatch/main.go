package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"dnaMatch/pkg/panel"
	"dnaMatch/pkg/report"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
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
	query = flag.String(
		"q",
		"",
		"query sequence file, plain text or fasta",
	)
	panelPath = flag.String(
		"p",
		"",
		"reference panel .xlsx/.csv/.tsv with Name and Sequence columns, default dna_database.xlsx beside the binary",
	)
	sheet = flag.String(
		"sheet",
		"",
		"panel sheet name, default first sheet",
	)
	output = flag.String(
		"o",
		"",
		"output json, default stdout",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug log",
	)

	paramFlags = report.RegisterFlags(flag.CommandLine, report.ExampleParams)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *query == "" {
		flag.PrintDefaults()
		log.Fatal("-q is required")
	}
	if *panelPath == "" {
		*panelPath = filepath.Join(exPath, "dna_database.xlsx")
	}
	if !osUtil.FileExists(*panelPath) {
		log.Fatalf("panel not found: %s", *panelPath)
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var (
		params  = simpleUtil.HandleError(paramFlags.Params())
		target  = simpleUtil.HandleError(panel.ReadQuery(*query))
		records = simpleUtil.HandleError(panel.LoadSheet(*panelPath, *sheet))
		result  = simpleUtil.HandleError(report.Analyze(target, records, params))
	)

	var out = os.Stdout
	if *output != "" {
		out = osUtil.Create(*output)
		defer simpleUtil.DeferClose(out)
	}
	fmtUtil.Fprintln(out, string(simpleUtil.HandleError(json.MarshalIndent(&result, "", "  "))))
}
