package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StillKrisi/bgsbot/internal/ebgs"
	"github.com/StillKrisi/bgsbot/internal/storage"
)

type stubStats struct {
	system     *ebgs.System
	systemErr  error
	factions   map[string]*ebgs.Faction
	factionErr map[string]error

	factionCalls atomic.Int64
}

func (s *stubStats) System(ctx context.Context, name string) (*ebgs.System, error) {
	if s.systemErr != nil {
		return nil, s.systemErr
	}
	return s.system, nil
}

func (s *stubStats) Faction(ctx context.Context, name string) (*ebgs.Faction, error) {
	s.factionCalls.Add(1)
	if err, ok := s.factionErr[name]; ok {
		return nil, err
	}
	if f, ok := s.factions[name]; ok {
		return f, nil
	}
	return nil, ebgs.ErrNotFound
}

func newTestAggregator(stats *stubStats, now time.Time) *Aggregator {
	a := NewAggregator(stats)
	a.now = func() time.Time { return now }
	return a
}

func makeSystem(factionCount int) (*ebgs.System, map[string]*ebgs.Faction) {
	system := &ebgs.System{
		Name:      "Qa'wakana",
		State:     "boom",
		UpdatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	factions := make(map[string]*ebgs.Faction, factionCount)
	for i := 0; i < factionCount; i++ {
		name := fmt.Sprintf("Faction %02d", i)
		lower := strings.ToLower(name)
		system.Factions = append(system.Factions, ebgs.SystemFaction{Name: name, NameLower: lower})
		factions[lower] = &ebgs.Faction{
			Name:      name,
			NameLower: lower,
			UpdatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			FactionPresence: []ebgs.FactionPresence{{
				SystemName:      system.Name,
				SystemNameLower: "qa'wakana",
				State:           "none",
				Influence:       float64(i) / 100,
			}},
		}
	}
	return system, factions
}

func TestSystemReport(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("unknown system maps to ErrSystemNotFound without fan-out", func(t *testing.T) {
		stats := &stubStats{systemErr: ebgs.ErrNotFound}
		a := newTestAggregator(stats, now)

		_, err := a.SystemReport(context.Background(), "nowhere", storage.SortPreference{})
		assert.ErrorIs(t, err, ErrSystemNotFound)
		assert.Zero(t, stats.factionCalls.Load())
	})

	t.Run("transport failure on system fetch passes through unchanged", func(t *testing.T) {
		terr := &ebgs.TransportError{Op: "GET", URL: "u", StatusCode: 502}
		stats := &stubStats{systemErr: terr}
		a := newTestAggregator(stats, now)

		_, err := a.SystemReport(context.Background(), "sol", storage.SortPreference{})
		var got *ebgs.TransportError
		require.ErrorAs(t, err, &got)
		var fanOut *FanOutError
		assert.False(t, errors.As(err, &fanOut))
	})

	t.Run("transport failure in fan-out becomes FanOutError", func(t *testing.T) {
		system, factions := makeSystem(3)
		terr := &ebgs.TransportError{Op: "GET", URL: "u", StatusCode: 500}
		stats := &stubStats{
			system:     system,
			factions:   factions,
			factionErr: map[string]error{"faction 01": terr},
		}
		a := newTestAggregator(stats, now)

		_, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		var fanOut *FanOutError
		require.ErrorAs(t, err, &fanOut)
		assert.ErrorIs(t, err, terr)
	})

	t.Run("missing faction document becomes a placeholder field", func(t *testing.T) {
		system, factions := makeSystem(2)
		delete(factions, "faction 01")
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		require.Len(t, pages[0].Fields, 3)
		assert.Equal(t, "Faction 01", pages[0].Fields[2].Name)
		assert.Equal(t, "Faction status not found", pages[0].Fields[2].Value)
	})

	t.Run("header field repeats on every page", func(t *testing.T) {
		system, factions := makeSystem(30)
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		require.NoError(t, err)
		require.Len(t, pages, 2)

		assert.Equal(t, "SYSTEM STATUS", pages[0].Title)
		assert.Equal(t, "SYSTEM STATUS - continued - Pg 2", pages[1].Title)
		assert.Len(t, pages[0].Fields, 25)
		assert.Len(t, pages[1].Fields, 7)
		for _, page := range pages {
			assert.Equal(t, system.Name, page.Fields[0].Name)
			assert.Equal(t, "boom", page.Fields[0].Value)
			assert.Equal(t, embedColor, page.Color)
		}
	})

	t.Run("empty system state renders as None", func(t *testing.T) {
		system, factions := makeSystem(1)
		system.State = ""
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		require.NoError(t, err)
		assert.Equal(t, "None", pages[0].Fields[0].Value)
	})

	t.Run("controlling faction is flagged in its field title", func(t *testing.T) {
		system, factions := makeSystem(2)
		system.ControllingMinorFaction = "faction 01"
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		require.NoError(t, err)
		assert.Equal(t, "Faction 01* CONTROLLING FACTION", pages[0].Fields[2].Name)
	})

	t.Run("field body anchors on the system timestamp", func(t *testing.T) {
		system, factions := makeSystem(1)
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		require.NoError(t, err)
		body := pages[0].Fields[1].Value
		assert.Contains(t, body, "Last Updated : a day ago \n")
		assert.Contains(t, body, "Pending States : None\n")
		assert.True(t, strings.HasSuffix(body, "Recovering States : None"))
	})

	t.Run("influence descending sort", func(t *testing.T) {
		system, factions := makeSystem(3)
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{
			Field: storage.SortInfluence,
			Order: storage.OrderDescending,
		})
		require.NoError(t, err)
		fields := pages[0].Fields[1:]
		assert.Equal(t, "Faction 02", fields[0].Name)
		assert.Equal(t, "Faction 01", fields[1].Name)
		assert.Equal(t, "Faction 00", fields[2].Name)
	})

	t.Run("zero order keeps fetch order", func(t *testing.T) {
		system, factions := makeSystem(3)
		stats := &stubStats{system: system, factions: factions}
		a := newTestAggregator(stats, now)

		pages, err := a.SystemReport(context.Background(), system.Name, storage.SortPreference{})
		require.NoError(t, err)
		fields := pages[0].Fields[1:]
		for i, f := range fields {
			assert.Equal(t, fmt.Sprintf("Faction %02d", i), f.Name)
		}
	})
}

func TestSortRecords(t *testing.T) {
	records := func() []FieldRecord {
		return []FieldRecord{
			{Name: "beta", Influence: 0.3},
			{Name: "Alpha", Influence: 0.1},
			{Name: "gamma", Influence: 0.3},
		}
	}

	t.Run("name ascending is case folded", func(t *testing.T) {
		r := records()
		sortRecords(r, storage.SortPreference{Field: storage.SortName, Order: storage.OrderAscending})
		assert.Equal(t, []string{"Alpha", "beta", "gamma"}, []string{r[0].Name, r[1].Name, r[2].Name})
	})

	t.Run("influence sort is stable across ties", func(t *testing.T) {
		r := records()
		sortRecords(r, storage.SortPreference{Field: storage.SortInfluence, Order: storage.OrderDescending})
		assert.Equal(t, []string{"beta", "gamma", "Alpha"}, []string{r[0].Name, r[1].Name, r[2].Name})
	})

	t.Run("unknown field keeps order", func(t *testing.T) {
		r := records()
		sortRecords(r, storage.SortPreference{Field: "color", Order: storage.OrderAscending})
		assert.Equal(t, records(), r)
	})
}

func TestFactionReport(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("unknown faction maps to ErrFactionNotFound", func(t *testing.T) {
		stats := &stubStats{}
		a := newTestAggregator(stats, now)
		_, err := a.FactionReport(context.Background(), "ghost collective", storage.SortPreference{})
		assert.ErrorIs(t, err, ErrFactionNotFound)
	})

	t.Run("one field per presence, anchored on the faction timestamp", func(t *testing.T) {
		faction := &ebgs.Faction{
			Name:       "Purple Society",
			NameLower:  "purple society",
			Government: "anarchy",
			UpdatedAt:  time.Date(2026, 8, 31, 11, 30, 0, 0, time.UTC),
			FactionPresence: []ebgs.FactionPresence{
				{SystemName: "Sol", SystemNameLower: "sol", Influence: 0.2},
				{SystemName: "Lave", SystemNameLower: "lave", Influence: 0.6},
			},
		}
		stats := &stubStats{factions: map[string]*ebgs.Faction{"Purple Society": faction}}
		a := newTestAggregator(stats, now)

		pages, err := a.FactionReport(context.Background(), "Purple Society", storage.SortPreference{})
		require.NoError(t, err)
		require.Len(t, pages, 1)
		page := pages[0]

		assert.Equal(t, "FACTION STATUS", page.Title)
		require.Len(t, page.Fields, 3)
		assert.Equal(t, "Purple Society", page.Fields[0].Name)
		assert.Equal(t, "Government : anarchy\nAllegiance : None", page.Fields[0].Value)
		assert.Equal(t, "Sol", page.Fields[1].Name)
		assert.Equal(t, "Lave", page.Fields[2].Name)
		assert.Contains(t, page.Fields[1].Value, "Last Updated : 30 minutes ago \n")
	})
}
