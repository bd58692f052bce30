package main

import (
	"log/slog"
	"path/filepath"

	"dnaMatch/pkg/report"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// 写入 Match
func addMatchSheet(xlsx *excelize.File, sheet string, results []queryResult) {
	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A1", &report.Title))

	var row = 2
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		line := result.Report.Row()
		simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, rowCell(row), &line))
		row++
	}
}

// 写入 Rank
func addRankSheet(xlsx *excelize.File, sheet string, results []queryResult) {
	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A1", &report.RankTitle))

	var row = 2
	for _, result := range results {
		for rank, hit := range result.Top {
			line := []any{result.Report.Query, rank + 1, hit.Index + 1, hit.Name, hit.Percentage, hit.Distance}
			simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, rowCell(row), &line))
			row++
		}
	}
}

// 写入 Summary
func addSummarySheet(xlsx *excelize.File, sheet string, summary *Summary) {
	simpleUtil.HandleError(xlsx.NewSheet(sheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A1", &SummaryTitle))
	line := summary.Row()
	simpleUtil.CheckErr(xlsx.SetSheetRow(sheet, "A2", &line))
}

func WriteResult(path string, results []queryResult, summary *Summary) {
	var xlsx = excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)

	addMatchSheet(xlsx, MatchSheet, results)
	addRankSheet(xlsx, RankSheet, results)
	addSummarySheet(xlsx, SummarySheet, summary)
	simpleUtil.CheckErr(xlsx.DeleteSheet("Sheet1"))

	slog.Info("SaveAs", "path", path)
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}

func WriteText(path string, results []queryResult) {
	out := osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	fmtUtil.FprintStringArray(out, report.Title, "\t")
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		fmtUtil.Fprintln(out, result.Report.String())
	}
}

func textPath(xlsxPath string) string {
	return xlsxPath[:len(xlsxPath)-len(filepath.Ext(xlsxPath))] + ".txt"
}
