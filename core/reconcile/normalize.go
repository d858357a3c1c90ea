package reconcile

import (
	"strings"

	"currency-registry/core/utils"
)

// Normalize converts one Active or Historic row into a Record.
// The second return value is false when the row must be skipped: the code is
// blank, or the row is a header that was re-parsed as data.
// Category and country fields are left for the Builder.
func Normalize(row RawRow) (Record, bool) {
	if utils.IsBlank(row.Code) {
		return Record{}, false
	}
	if strings.TrimSpace(row.Entity) == headerEntity {
		return Record{}, false
	}

	return Record{
		Code:      utils.Upper(row.Code),
		Name:      escapeName(strings.TrimSpace(row.Currency)),
		Numeric:   utils.ToInt(row.Numeric, NoValue),
		MinorUnit: normalizeMinorUnit(row.MinorUnit),
	}, true
}

func normalizeMinorUnit(cell string) int {
	if strings.TrimSpace(cell) == notApplicable {
		return NoValue
	}
	return utils.ToInt(cell, NoValue)
}

// escapeName escapes double quotes so names embed safely in generated text.
func escapeName(name string) string {
	return strings.ReplaceAll(name, `"`, `\"`)
}
