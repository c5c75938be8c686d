package command

import "github.com/bwmarrin/discordgo"

// GuildHasRole reports whether roleID exists in the guild, preferring state
// cache over the API.
func GuildHasRole(s *discordgo.Session, guildID, roleID string) bool {
	if role, err := s.State.Role(guildID, roleID); err == nil && role != nil {
		return true
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return false
	}
	for _, role := range roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}

// RoleName resolves a role ID to its display name, or "" when unknown.
func RoleName(s *discordgo.Session, guildID, roleID string) string {
	if role, err := s.State.Role(guildID, roleID); err == nil && role != nil {
		return role.Name
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return ""
	}
	for _, role := range roles {
		if role.ID == roleID {
			return role.Name
		}
	}
	return ""
}

// GuildHasChannel reports whether channelID is a channel of the guild.
func GuildHasChannel(s *discordgo.Session, guildID, channelID string) bool {
	channel, err := s.State.Channel(channelID)
	if err != nil || channel == nil {
		channel, err = s.Channel(channelID)
		if err != nil || channel == nil {
			return false
		}
	}
	return channel.GuildID == guildID
}
