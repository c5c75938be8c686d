package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/StillKrisi/bgsbot/internal/ebgs"
	"github.com/StillKrisi/bgsbot/internal/storage"
)

// FactionReport builds the paginated status report for one faction: one field
// per system the faction has a presence in, anchored on the faction's own
// last-updated timestamp.
func (a *Aggregator) FactionReport(ctx context.Context, factionName string, pref storage.SortPreference) ([]*discordgo.MessageEmbed, error) {
	faction, err := a.stats.Faction(ctx, factionName)
	if err != nil {
		if errors.Is(err, ebgs.ErrNotFound) {
			return nil, ErrFactionNotFound
		}
		return nil, err
	}

	records := make([]FieldRecord, len(faction.FactionPresence))
	for i := range faction.FactionPresence {
		presence := &faction.FactionPresence[i]
		name := presence.SystemName
		if name == "" {
			name = presence.SystemNameLower
		}
		records[i] = FieldRecord{
			Title:     name,
			Body:      presenceDetail(presence, faction.UpdatedAt, a.now()),
			Name:      name,
			Influence: presence.Influence,
		}
	}

	sortRecords(records, pref)

	header := field{
		title: faction.Name,
		body:  fmt.Sprintf("Government : %s\nAllegiance : %s", orNone(faction.Government), orNone(faction.Allegiance)),
	}
	return a.paginate("FACTION STATUS", header, records), nil
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
