package middleware

import (
	"context"
	"log"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/internal/discord"
	"github.com/StillKrisi/bgsbot/internal/storage"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

// WithCommandLogger wraps a command to record its execution in the guild's
// command history.
func WithCommandLogger(store *storage.Storage) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			if v, ok := inv.Data.(*command.Context); ok && v.Message.GuildID != "" {
				m := v.Message
				if logErr := discord.LogCommand(v.Session, store, m.GuildID, m.ChannelID, m.Author.ID, m.Author.Username, c.Name()); logErr != nil {
					log.Printf("[WARN] Failed to log command %s: %v", c.Name(), logErr)
				}
			}
			return err
		})
	}
}
