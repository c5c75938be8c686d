package storage

// Sortable report fields and orders. Order 0 (or an empty field) means the
// report keeps its original fetch order.
const (
	SortName      = "name"
	SortInfluence = "influence"

	OrderAscending  = 1
	OrderNone       = 0
	OrderDescending = -1
)

// SortPreference is a guild's report ordering choice.
type SortPreference struct {
	Field string
	Order int
}

// SetSort stores the guild's sort preference.
func (s *Storage) SetSort(guildID, field string, order int) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.Sort = field
		r.SortOrder = order
	})
}

// RemoveSort clears the guild's sort preference.
func (s *Storage) RemoveSort(guildID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.Sort = ""
		r.SortOrder = OrderNone
	})
}

// SortPreference returns the guild's sort preference. A missing guild or an
// unset preference yields the zero value, which keeps fetch order.
func (s *Storage) SortPreference(guildID string) (SortPreference, error) {
	record, exists, err := s.Guild(guildID)
	if err != nil {
		return SortPreference{}, err
	}
	if !exists {
		return SortPreference{}, nil
	}
	return SortPreference{Field: record.Sort, Order: record.SortOrder}, nil
}
