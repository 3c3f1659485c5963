package sheet

// Profile describes the column layout of one spreadsheet export format.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	CategoryCol string
	AmountCol   string
	NotesCol    string // optional; empty means the format has no notes column
	DateFormats []string
}

// requiredCols returns the column names that must be present for this
// profile to match. Notes are never required.
func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.CategoryCol, p.AmountCol}
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles should come first.
var profiles = []Profile{
	// The bookkeeping sheet the clinic kept before moving to this system.
	{
		Name:        "ledger",
		DateCol:     "Date",
		CategoryCol: "Category",
		AmountCol:   "Amount",
		NotesCol:    "Notes",
		DateFormats: []string{"02/01/2006", "2006-01-02"},
	},
	// The accountant's quarterly expense summary.
	{
		Name:        "quarterly",
		CategoryCol: "Expense Type",
		DateCol:     "Expense Date",
		AmountCol:   "Cost",
		NotesCol:    "Description",
		DateFormats: []string{"2006-01-02", "02 Jan 2006"},
	},
}
