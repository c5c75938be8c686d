package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMention(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain mention", "<@123> systemstatus get sol", "systemstatus get sol"},
		{"nickname mention", "<@!123> hi", "hi"},
		{"mention mid-message", "systemstatus <@123> get sol", "systemstatus get sol"},
		{"repeated mentions", "<@123> <@!123> hi", "hi"},
		{"whitespace collapses", "<@123>   systemstatus   get   sol  ", "systemstatus get sol"},
		{"mention only", "<@123>", ""},
		{"other user's mention survives", "<@456> hi", "<@456> hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMention(tt.content, "123"))
		})
	}
}

func TestSplitCommand(t *testing.T) {
	t.Run("name is lowercased, args keep their case", func(t *testing.T) {
		name, args := SplitCommand("SystemStatus get Qa'wakana")
		assert.Equal(t, "systemstatus", name)
		assert.Equal(t, []string{"get", "Qa'wakana"}, args)
	})

	t.Run("bare command has no args", func(t *testing.T) {
		name, args := SplitCommand("hi")
		assert.Equal(t, "hi", name)
		assert.Empty(t, args)
	})

	t.Run("empty input yields empty name", func(t *testing.T) {
		name, args := SplitCommand("")
		assert.Empty(t, name)
		assert.Nil(t, args)
	})
}
