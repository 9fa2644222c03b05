package repository

import "strings"

// Columns resolves logical guest fields against the drifting header
// spellings of the backing sheet. Alternates are tried in priority order;
// a field missing under every spelling resolves to an empty string. This
// is the single translation point between the loose sheet schema and the
// typed guest record.
type Columns struct {
	NameKeys      []string
	CodeKeys      []string
	ConfirmedKeys []string
	// Affirmative is the literal token a confirmation cell must equal
	// (case-insensitively) for the guest to count as confirmed.
	Affirmative string
}

// DefaultColumns matches the sheet this site was built around.
func DefaultColumns() Columns {
	return Columns{
		NameKeys:      []string{"ФИО", "ФИО гостей"},
		CodeKeys:      []string{"КОД", "Код"},
		ConfirmedKeys: []string{"Подтвердили", "Подтвердили "},
		Affirmative:   "да",
	}
}

func (c Columns) Name(row Row) string {
	return pick(row, c.NameKeys)
}

func (c Columns) Code(row Row) string {
	return pick(row, c.CodeKeys)
}

func (c Columns) Confirmed(row Row) bool {
	cell := pick(row, c.ConfirmedKeys)
	return cell != "" && strings.EqualFold(cell, c.Affirmative)
}

func pick(row Row, keys []string) string {
	for _, key := range keys {
		if value, ok := row[key]; ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
