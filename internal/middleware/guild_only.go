// Package middleware provides the cross-cutting wrappers applied to every
// registered command.
package middleware

import (
	"context"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

// WithGuildOnly wraps a command to ignore direct messages: every command here
// operates on per-guild configuration, so there is nothing to do in a DM.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if v, ok := inv.Data.(*command.Context); ok && v.Message.GuildID == "" {
				return v.Reply("This command only works inside a guild.")
			}
			return c.Run(ctx, inv)
		})
	}
}
