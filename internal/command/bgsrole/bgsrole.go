// Package bgsrole manages the role that unlocks the BGS reporting commands.
package bgsrole

import (
	"context"
	"fmt"
	"log"

	embed "github.com/clinet/discordgo-embed"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

const embedColor = 0xFF00FF

type Command struct {
	gate  command.Gate
	store command.GuildStore
	verbs map[string]command.VerbFunc
}

func New(gate command.Gate, store command.GuildStore) *Command {
	c := &Command{gate: gate, store: store}
	c.verbs = map[string]command.VerbFunc{
		"set":    c.set,
		"remove": c.remove,
		"show":   c.show,
	}
	return c
}

func (c *Command) Name() string { return "bgsrole" }
func (c *Command) Description() string {
	return "Sets, removes or shows the role required for the BGS commands"
}

func (c *Command) Run(ctx context.Context, inv *cmd.Invocation) error {
	mctx, ok := inv.Data.(*command.Context)
	if !ok {
		return nil
	}
	return command.RunVerbs(ctx, mctx, inv.Args, c.verbs)
}

func (c *Command) set(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] bgsrole: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	switch {
	case len(args) > 2:
		return mctx.Respond(command.TooManyParams)
	case len(args) < 2:
		return mctx.Respond(command.NoParams)
	}

	roleID := args[1]
	if !command.GuildHasRole(mctx.Session, mctx.Message.GuildID, roleID) {
		return mctx.Respond(command.IDNotFound)
	}

	if err := c.store.SetBGSRole(mctx.Message.GuildID, roleID); err != nil {
		return command.ReplyStoreError(mctx, "bgsrole", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) remove(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] bgsrole: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	if err := c.store.RemoveBGSRole(mctx.Message.GuildID); err != nil {
		return command.ReplyStoreError(mctx, "bgsrole", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) show(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] bgsrole: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	record, exists, err := c.store.Guild(mctx.Message.GuildID)
	if err != nil {
		return command.ReplyStoreError(mctx, "bgsrole", err)
	}
	if !exists {
		return mctx.Reply("Your guild is not set yet")
	}
	if record.BGSRoleID == "" {
		return mctx.Reply("You don't have a bgs role set up")
	}

	line := fmt.Sprintf("%s - @%s\n", record.BGSRoleID, command.RoleName(mctx.Session, mctx.Message.GuildID, record.BGSRoleID))
	msg := embed.NewEmbed().
		SetTitle("BGS Role").
		SetColor(embedColor).
		AddField("Ids and Names", line)
	return mctx.ReplyEmbed(msg.MessageEmbed)
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "bgsrole",
		Description: "Sets, removes or shows the role required for the BGS commands",
		Template:    "bgsrole <set|remove|show> <role id>",
		Examples: []string{
			"`@BGSBot bgsrole set 123456789012345678`",
			"`@BGSBot bgsrole remove`",
			"`@BGSBot bgsrole show`",
		},
	}
}
