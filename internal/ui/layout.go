package ui

// Column widths for the character table.
const (
	nameColumnWidth  = 24
	valueColumnWidth = 11
	minTableHeight   = 5
)

// labelWidth is the width of field labels in the detail view.
const labelWidth = 16

// chromeHeight is the number of lines used by header, search, pager and footer.
const chromeHeight = 9
