package main

var (
	MatchSheet   = "Match"
	RankSheet    = "Rank"
	SummarySheet = "Summary"

	SummaryTitle = []string{
		"Panel",
		"Records",
		"Queries",
		"Matched",
		"Unmatched",
		"MeanPercentage",
		"MedianPercentage",
	}

	TopCount = 5
)
