// Package report builds paginated status reports from live EliteBGS data.
// One system query fans out into one faction query per minor faction present,
// joined fail-fast; results are correlated back to the system by name, sorted
// per guild preference and split into embed pages.
package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/StillKrisi/bgsbot/internal/ebgs"
	"github.com/StillKrisi/bgsbot/internal/storage"
	"github.com/StillKrisi/bgsbot/pkg/util"
)

// ErrSystemNotFound means the statistics API knows no system by that name.
var ErrSystemNotFound = errors.New("report: system not found")

// ErrFactionNotFound means the statistics API knows no faction by that name.
var ErrFactionNotFound = errors.New("report: faction not found")

// FanOutError marks a transport failure inside the faction fan-out. Callers
// reply with a generic failure for these, while a failed system fetch is only
// logged.
type FanOutError struct {
	Err error
}

func (e *FanOutError) Error() string { return "report: faction fan-out: " + e.Err.Error() }

func (e *FanOutError) Unwrap() error { return e.Err }

// StatisticsClient is the slice of the ebgs client the aggregator needs.
type StatisticsClient interface {
	System(ctx context.Context, name string) (*ebgs.System, error)
	Faction(ctx context.Context, name string) (*ebgs.Faction, error)
}

// Aggregator orchestrates the fetch fan-out and renders report pages.
type Aggregator struct {
	stats StatisticsClient
	now   func() time.Time
}

// NewAggregator returns an Aggregator reading from stats.
func NewAggregator(stats StatisticsClient) *Aggregator {
	return &Aggregator{stats: stats, now: time.Now}
}

// SystemReport builds the paginated status report for one system. A missing
// system yields ErrSystemNotFound before any faction is fetched; a transport
// failure on any single faction fetch fails the whole report.
func (a *Aggregator) SystemReport(ctx context.Context, systemName string, pref storage.SortPreference) ([]*discordgo.MessageEmbed, error) {
	system, err := a.stats.System(ctx, systemName)
	if err != nil {
		if errors.Is(err, ebgs.ErrNotFound) {
			return nil, ErrSystemNotFound
		}
		return nil, err
	}

	systemState := system.State
	if systemState == "" {
		systemState = "None"
	}

	records := make([]FieldRecord, len(system.Factions))
	indices := make([]int, len(system.Factions))
	for i := range indices {
		indices[i] = i
	}

	// One worker per faction; the first hard failure cancels the rest.
	err = util.Parallel(ctx, indices, 0, func(ctx context.Context, i int) error {
		listed := system.Factions[i]
		faction, err := a.stats.Faction(ctx, listed.NameLower)
		if err != nil {
			if errors.Is(err, ebgs.ErrNotFound) {
				records[i] = FieldRecord{
					Title: listed.Name,
					Body:  "Faction status not found",
					Name:  listed.Name,
				}
				return nil
			}
			return err
		}

		records[i] = a.buildFieldRecord(system, faction)
		return nil
	})
	if err != nil {
		return nil, &FanOutError{Err: err}
	}

	sortRecords(records, pref)

	header := field{title: system.Name, body: systemState}
	return a.paginate("SYSTEM STATUS", header, records), nil
}

// buildFieldRecord normalizes one faction's presence in the system into a
// rendering-ready record. The "Last Updated" line uses the system's timestamp
// for every faction; faction documents can lag the system document.
func (a *Aggregator) buildFieldRecord(system *ebgs.System, faction *ebgs.Faction) FieldRecord {
	presence, ok := findPresence(faction, system.Name)
	if !ok {
		return FieldRecord{
			Title: faction.Name,
			Body:  "Faction status not found",
			Name:  faction.Name,
		}
	}

	title := faction.Name
	if faction.NameLower == system.ControllingMinorFaction {
		title += "* CONTROLLING FACTION"
	}

	return FieldRecord{
		Title:     title,
		Body:      presenceDetail(presence, system.UpdatedAt, a.now()),
		Name:      faction.Name,
		Influence: presence.Influence,
	}
}

func findPresence(faction *ebgs.Faction, systemName string) (*ebgs.FactionPresence, bool) {
	lower := strings.ToLower(systemName)
	for i := range faction.FactionPresence {
		if faction.FactionPresence[i].SystemNameLower == lower {
			return &faction.FactionPresence[i], true
		}
	}
	return nil, false
}
