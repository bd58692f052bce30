package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"dnaMatch/pkg/matcher"
	"dnaMatch/pkg/panel"
	"dnaMatch/pkg/report"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type queryResult struct {
	Index  int
	Path   string
	Report report.Report
	Top    []matcher.Scored
	Err    error
}

// ListQueries collects query files from a comma list and/or a directory.
func ListQueries(list, dir string) ([]string, error) {
	var paths = lo.Filter(
		lo.Map(strings.Split(list, ","), func(p string, _ int) string { return strings.TrimSpace(p) }),
		func(p string, _ int) bool { return p != "" },
	)
	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// RunBatch matches every query against records concurrently and returns
// results in query order.
func RunBatch(paths []string, records []matcher.Record, statistics report.Statistics, top int) []queryResult {
	results := make(chan queryResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results <- processQuery(i, path, records, statistics, top)
		}(i, path)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var ordered = make([]queryResult, 0, len(paths))
	for result := range results {
		ordered = append(ordered, result)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})
	return ordered
}

func processQuery(i int, path string, records []matcher.Record, statistics report.Statistics, top int) queryResult {
	var result = queryResult{Index: i, Path: path}
	seq, err := panel.ReadQuery(path)
	if err != nil {
		slog.Error("Skip", "index", i, "path", path, "err", err)
		result.Err = err
		return result
	}

	var name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result.Report = report.FromMatch(name, matcher.FindBestMatch(seq, records), statistics)
	result.Top = matcher.Top(seq, records, top)
	slog.Info("query", "index", i+1, "name", name, "bestMatch", result.Report.Name(), "percentage", result.Report.BestMatchPercentage)
	return result
}

type Summary struct {
	Panel     string
	Records   int
	Queries   int
	Matched   int
	Unmatched int
	Mean      float64
	Median    float64
}

func Summarize(panelPath string, records int, results []queryResult) (summary Summary, err error) {
	summary = Summary{
		Panel:   panelPath,
		Records: records,
		Queries: len(results),
	}
	var ok = lo.Filter(results, func(r queryResult, _ int) bool { return r.Err == nil })
	summary.Matched = lo.CountBy(ok, func(r queryResult) bool { return r.Report.BestMatchName != nil })
	summary.Unmatched = len(ok) - summary.Matched
	if len(ok) == 0 {
		return summary, nil
	}

	percentages := lo.Map(ok, func(r queryResult, _ int) float64 { return r.Report.BestMatchPercentage })
	summary.Mean = lo.Mean(percentages)
	summary.Median, err = stats.Median(percentages)
	if err != nil {
		return summary, fmt.Errorf("median: %w", err)
	}
	return summary, nil
}

func (s *Summary) Row() []any {
	return []any{s.Panel, s.Records, s.Queries, s.Matched, s.Unmatched, s.Mean, s.Median}
}
