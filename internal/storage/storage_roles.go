package storage

// SetBGSRole sets the single role allowed to run BGS reporting commands.
func (s *Storage) SetBGSRole(guildID, roleID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.BGSRoleID = roleID
	})
}

// RemoveBGSRole clears the BGS role.
func (s *Storage) RemoveBGSRole(guildID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.BGSRoleID = ""
	})
}

// AddAdminRole adds a role ID to the guild's admin role set.
func (s *Storage) AddAdminRole(guildID, roleID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.AdminRoleIDs = appendUnique(r.AdminRoleIDs, roleID)
	})
}

// RemoveAdminRole removes a role ID from the guild's admin role set.
func (s *Storage) RemoveAdminRole(guildID, roleID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.AdminRoleIDs = remove(r.AdminRoleIDs, roleID)
	})
}

// AddForbiddenRole adds a role ID to the guild's forbidden-override set.
func (s *Storage) AddForbiddenRole(guildID, roleID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.ForbiddenRoleIDs = appendUnique(r.ForbiddenRoleIDs, roleID)
	})
}

// RemoveForbiddenRole removes a role ID from the guild's forbidden-override set.
func (s *Storage) RemoveForbiddenRole(guildID, roleID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.ForbiddenRoleIDs = remove(r.ForbiddenRoleIDs, roleID)
	})
}

// SetBGSChannel sets the channel BGS reports are allowed in.
func (s *Storage) SetBGSChannel(guildID, channelID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.BGSChannelID = channelID
	})
}

// RemoveBGSChannel clears the BGS channel.
func (s *Storage) RemoveBGSChannel(guildID string) error {
	return s.update(guildID, func(r *GuildRecord) {
		r.BGSChannelID = ""
	})
}

func appendUnique(list []string, item string) []string {
	for _, v := range list {
		if v == item {
			return list
		}
	}
	return append(list, item)
}

func remove(list []string, item string) []string {
	updated := make([]string, 0, len(list))
	for _, v := range list {
		if v != item {
			updated = append(updated, v)
		}
	}
	return updated
}
