package ebgs

import "time"

// System is one systems-endpoint document.
type System struct {
	Name                    string          `json:"name"`
	State                   string          `json:"state"`
	ControllingMinorFaction string          `json:"controlling_minor_faction"`
	Factions                []SystemFaction `json:"factions"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// SystemFaction is a minor faction listed as present in a system.
type SystemFaction struct {
	Name      string `json:"name"`
	NameLower string `json:"name_lower"`
}

// Faction is one factions-endpoint document.
type Faction struct {
	Name            string            `json:"name"`
	NameLower       string            `json:"name_lower"`
	Government      string            `json:"government"`
	Allegiance      string            `json:"allegiance"`
	FactionPresence []FactionPresence `json:"faction_presence"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// FactionPresence is a faction's snapshot within one system.
type FactionPresence struct {
	SystemName       string       `json:"system_name"`
	SystemNameLower  string       `json:"system_name_lower"`
	State            string       `json:"state"`
	Influence        float64      `json:"influence"`
	PendingStates    []TrendState `json:"pending_states"`
	RecoveringStates []TrendState `json:"recovering_states"`
}

// TrendState is a state transition in progress, annotated with a direction.
type TrendState struct {
	State string `json:"state"`
	Trend int    `json:"trend"`
}

// envelope is the list wrapper both endpoints return. total == 0 signals
// not-found, which is a domain outcome rather than a transport failure.
type envelope[T any] struct {
	Total int `json:"total"`
	Docs  []T `json:"docs"`
}
