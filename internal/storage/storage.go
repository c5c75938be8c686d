package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/StillKrisi/bgsbot/datastore"
)

const commandHistoryLimit int = 20

// ErrGuildNotSet is returned by mutators when the guild record does not exist
// yet. Guilds are created explicitly via `myguild set`, never implicitly.
var ErrGuildNotSet = errors.New("guild is not set")

type Storage struct {
	ds *datastore.DataStore
}

// GuildRecord is the per-guild configuration document.
type GuildRecord struct {
	GuildID          string                 `json:"guild_id"`
	BGSRoleID        string                 `json:"bgs_role_id,omitempty"`
	AdminRoleIDs     []string               `json:"admin_roles_id,omitempty"`
	ForbiddenRoleIDs []string               `json:"forbidden_roles_id,omitempty"`
	BGSChannelID     string                 `json:"bgs_channel_id,omitempty"`
	Sort             string                 `json:"sort,omitempty"`
	SortOrder        int                    `json:"sort_order,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	CommandsHistory  []CommandHistoryRecord `json:"cmd_history,omitempty"`
}

// CommandHistoryRecord is one logged command invocation.
type CommandHistoryRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// Guild returns the record for a guild and whether one exists. A missing
// record is not an error; callers treat it as "no configuration".
func (s *Storage) Guild(guildID string) (*GuildRecord, bool, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		return nil, false, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, false, fmt.Errorf("error marshalling data: %w", err)
	}

	var record GuildRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, false, fmt.Errorf("error unmarshalling to *GuildRecord: %w", err)
	}

	if len(record.CommandsHistory) > commandHistoryLimit {
		record.CommandsHistory = record.CommandsHistory[len(record.CommandsHistory)-commandHistoryLimit:]
	}

	return &record, true, nil
}

// CreateGuild registers a guild record if one does not exist yet.
// Reports whether a new record was created.
func (s *Storage) CreateGuild(guildID string) (bool, error) {
	_, exists, err := s.Guild(guildID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	now := time.Now()
	s.ds.Add(guildID, &GuildRecord{
		GuildID:   guildID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return true, nil
}

// RemoveGuild deletes a guild record and everything configured under it.
func (s *Storage) RemoveGuild(guildID string) error {
	_, exists, err := s.Guild(guildID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrGuildNotSet
	}
	s.ds.Delete(guildID)
	return nil
}

// update loads the guild record, applies fn, stamps UpdatedAt and saves.
func (s *Storage) update(guildID string, fn func(*GuildRecord)) error {
	record, exists, err := s.Guild(guildID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrGuildNotSet
	}

	fn(record)
	record.UpdatedAt = time.Now()
	s.ds.Add(guildID, record)
	return nil
}
