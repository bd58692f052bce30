package report

var Title = []string{
	"Query",
	"BestMatchName",
	"BestMatchPercentage",
	"RMP",
	"CPI",
	"PI",
	"KinshipLR",
	"FSI",
}

var RankTitle = []string{
	"Query",
	"Rank",
	"Index",
	"Name",
	"Percentage",
	"Distance",
}

// separators of the flag/text form of allele frequencies: loci by ';', alleles by ','
var (
	LocusSep  = ";"
	AlleleSep = ","
)
