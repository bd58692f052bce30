package main

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// rowCell is the first cell of a sheet row, where SetSheetRow starts writing.
func rowCell(row int) string {
	return simpleUtil.HandleError(excelize.CoordinatesToCellName(1, row))
}
