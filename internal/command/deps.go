package command

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/StillKrisi/bgsbot/internal/access"
	"github.com/StillKrisi/bgsbot/internal/storage"
)

// Gate checks role-based access. Implemented by access.Gate.
type Gate interface {
	Has(member *discordgo.Member, guildID string, required ...access.Category) (bool, error)
}

// GuildStore is the slice of storage.Storage the config commands use.
type GuildStore interface {
	Guild(guildID string) (*storage.GuildRecord, bool, error)
	CreateGuild(guildID string) (bool, error)
	RemoveGuild(guildID string) error
	SetBGSRole(guildID, roleID string) error
	RemoveBGSRole(guildID string) error
	AddAdminRole(guildID, roleID string) error
	RemoveAdminRole(guildID, roleID string) error
	AddForbiddenRole(guildID, roleID string) error
	RemoveForbiddenRole(guildID, roleID string) error
	SetBGSChannel(guildID, channelID string) error
	RemoveBGSChannel(guildID string) error
	SetSort(guildID, field string, order int) error
	RemoveSort(guildID string) error
	SortPreference(guildID string) (storage.SortPreference, error)
}

// Reporter builds paginated status reports. Implemented by report.Aggregator.
type Reporter interface {
	SystemReport(ctx context.Context, systemName string, pref storage.SortPreference) ([]*discordgo.MessageEmbed, error)
	FactionReport(ctx context.Context, factionName string, pref storage.SortPreference) ([]*discordgo.MessageEmbed, error)
}
