package storage

// AppendCommandToHistory appends a command history record for a guild.
// Invocations from guilds that never ran `myguild set` are dropped: creating
// the record here would make every other command think the guild is set.
func (s *Storage) AppendCommandToHistory(guildID string, entry CommandHistoryRecord) error {
	record, exists, err := s.Guild(guildID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	record.CommandsHistory = append(record.CommandsHistory, entry)
	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}
	s.ds.Add(guildID, record)
	return nil
}

// FetchCommandHistory returns the logged command invocations for a guild.
func (s *Storage) FetchCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, exists, err := s.Guild(guildID)
	if err != nil || !exists {
		return nil, err
	}
	return record.CommandsHistory, nil
}
