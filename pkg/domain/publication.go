package domain

// Publication represents one row of the publications dataset.
// Index is the 0-based row position in file order, Extra holds all columns
// other than Title and Link untouched.
type Publication struct {
	Index int
	Title string
	Link  string
	Extra map[string]string
}

// Column names every dataset must carry
const (
	ColumnTitle = "Title"
	ColumnLink  = "Link"
)
