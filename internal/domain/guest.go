package domain

import "strings"

// Guest is a read-only projection of one row of the externally managed
// guest sheet. The code is the sole lookup key and doubles as the routable
// identifier embedded in invitation URLs and QR payloads.
type Guest struct {
	Name string `json:"name"`
	Code string `json:"code"`
	// RowIndex is the 1-based row in the backing sheet including the
	// header offset. Provenance hint only; sheet edits move it.
	RowIndex  int  `json:"row_index"`
	Confirmed bool `json:"confirmed"`
}

// NewGuest trims the raw cell values and returns nil when either the name
// or the code is missing. Rows without both never materialize as guests.
func NewGuest(name, code string, rowIndex int, confirmed bool) *Guest {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" || code == "" {
		return nil
	}
	return &Guest{
		Name:      name,
		Code:      code,
		RowIndex:  rowIndex,
		Confirmed: confirmed,
	}
}

// Plural reports whether the record names more than one person, which the
// invitation copy uses to pick the greeting form.
func (g *Guest) Plural() bool {
	if g == nil {
		return false
	}
	return len(strings.Fields(g.Name)) > 1
}
