// Package access decides whether a guild member may run a gated command,
// based on the role IDs configured for their guild.
package access

import (
	"github.com/bwmarrin/discordgo"

	"github.com/StillKrisi/bgsbot/internal/storage"
)

// Category is a role category a command may require.
type Category int

const (
	// Admin matches any of the guild's configured admin role IDs.
	Admin Category = iota
	// BGS matches the guild's configured BGS operator role ID.
	BGS
	// Forbidden is an override: when requested, a member holding any of the
	// guild's forbidden-override roles is granted regardless of other roles.
	Forbidden
)

// GuildReader supplies per-guild configuration. Absence of a record means
// "no roles configured", never an error.
type GuildReader interface {
	Guild(guildID string) (*storage.GuildRecord, bool, error)
}

// Gate evaluates role-based access for guild members.
type Gate struct {
	guilds GuildReader
}

// NewGate returns a Gate reading guild configuration from guilds.
func NewGate(guilds GuildReader) *Gate {
	return &Gate{guilds: guilds}
}

// Has reports whether member holds at least one role satisfying any of the
// required categories in guildID. A guild with no stored configuration denies
// everything. The error is only ever a storage failure.
func (g *Gate) Has(member *discordgo.Member, guildID string, required ...Category) (bool, error) {
	if member == nil || len(required) == 0 {
		return false, nil
	}

	record, exists, err := g.guilds.Guild(guildID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	held := make(map[string]bool, len(member.Roles))
	for _, id := range member.Roles {
		held[id] = true
	}

	// Forbidden override wins independently of the other categories.
	for _, cat := range required {
		if cat != Forbidden {
			continue
		}
		for _, id := range record.ForbiddenRoleIDs {
			if held[id] {
				return true, nil
			}
		}
	}

	for _, cat := range required {
		switch cat {
		case Admin:
			for _, id := range record.AdminRoleIDs {
				if held[id] {
					return true, nil
				}
			}
		case BGS:
			if record.BGSRoleID != "" && held[record.BGSRoleID] {
				return true, nil
			}
		}
	}

	return false, nil
}
