package report

import (
	"sort"
	"strings"

	"github.com/StillKrisi/bgsbot/internal/storage"
)

// sortRecords orders records per the guild's preference. An unset field or a
// zero order keeps the original fetch order. Equal elements never swap.
func sortRecords(records []FieldRecord, pref storage.SortPreference) {
	if pref.Order == storage.OrderNone {
		return
	}

	switch pref.Field {
	case storage.SortName:
		sort.SliceStable(records, func(i, j int) bool {
			a := strings.ToLower(records[i].Name)
			b := strings.ToLower(records[j].Name)
			if pref.Order == storage.OrderDescending {
				return a > b
			}
			return a < b
		})
	case storage.SortInfluence:
		sort.SliceStable(records, func(i, j int) bool {
			if pref.Order == storage.OrderDescending {
				return records[i].Influence > records[j].Influence
			}
			return records[i].Influence < records[j].Influence
		})
	}
}
