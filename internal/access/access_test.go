package access

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StillKrisi/bgsbot/internal/storage"
)

type stubGuilds struct {
	record *storage.GuildRecord
	err    error
}

func (s *stubGuilds) Guild(string) (*storage.GuildRecord, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	return s.record, s.record != nil, nil
}

func member(roles ...string) *discordgo.Member {
	return &discordgo.Member{Roles: roles}
}

func TestGateHas(t *testing.T) {
	configured := &storage.GuildRecord{
		GuildID:          "g1",
		BGSRoleID:        "bgs",
		AdminRoleIDs:     []string{"admin1", "admin2"},
		ForbiddenRoleIDs: []string{"override"},
	}

	t.Run("unconfigured guild denies everyone", func(t *testing.T) {
		gate := NewGate(&stubGuilds{})
		ok, err := gate.Has(member("admin1", "bgs"), "g1", Admin, BGS, Forbidden)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("admin role grants", func(t *testing.T) {
		gate := NewGate(&stubGuilds{record: configured})
		ok, err := gate.Has(member("admin2"), "g1", Admin)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("bgs role grants", func(t *testing.T) {
		gate := NewGate(&stubGuilds{record: configured})
		ok, err := gate.Has(member("bgs"), "g1", Admin, BGS)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no matching role denies", func(t *testing.T) {
		gate := NewGate(&stubGuilds{record: configured})
		ok, err := gate.Has(member("unrelated"), "g1", Admin, BGS, Forbidden)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("forbidden override grants regardless of other roles", func(t *testing.T) {
		gate := NewGate(&stubGuilds{record: configured})
		ok, err := gate.Has(member("override"), "g1", Admin, BGS, Forbidden)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("forbidden role alone does not satisfy admin", func(t *testing.T) {
		gate := NewGate(&stubGuilds{record: configured})
		ok, err := gate.Has(member("override"), "g1", Admin)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nil member denies without reading storage", func(t *testing.T) {
		gate := NewGate(&stubGuilds{err: errors.New("should not be called")})
		ok, err := gate.Has(nil, "g1", Admin)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		storeErr := errors.New("disk gone")
		gate := NewGate(&stubGuilds{err: storeErr})
		_, err := gate.Has(member("admin1"), "g1", Admin)
		assert.ErrorIs(t, err, storeErr)
	})
}
