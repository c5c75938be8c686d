package access

import "github.com/bwmarrin/discordgo"

// IsAdministrator reports whether a member owns the guild or holds a role
// with the Administrator permission. Guild configuration commands accept this
// alongside the gate so a fresh guild can be bootstrapped before any role
// IDs are stored.
func IsAdministrator(s *discordgo.Session, member *discordgo.Member, guildID string) bool {
	if member == nil || member.User == nil {
		return false
	}

	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil || guild == nil {
			return false
		}
	}

	if member.User.ID == guild.OwnerID {
		return true
	}
	for _, roleID := range member.Roles {
		if role, _ := s.State.Role(guildID, roleID); role != nil {
			if role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true
			}
		}
	}
	return false
}
