package panel

import "errors"

// header columns required in every panel sheet
var (
	NameColumn     = "Name"
	SequenceColumn = "Sequence"
)

var (
	ErrMissingColumn     = errors.New("panel must contain 'Name' and 'Sequence' columns")
	ErrUnsupportedFormat = errors.New("unsupported panel format")
	ErrEmptyQuery        = errors.New("query contains no sequence")
)
