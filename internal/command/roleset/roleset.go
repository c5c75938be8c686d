// Package roleset implements the add/remove/show commands for guild role
// sets. The admin and forbidden-override commands are the same command with
// different accessors.
package roleset

import (
	"context"
	"fmt"
	"log"
	"strings"

	embed "github.com/clinet/discordgo-embed"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/internal/storage"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

const embedColor = 0xFF00FF

// Spec describes one role-set command: its identity and how it reads and
// writes its slice of the guild record.
type Spec struct {
	CommandName string
	Title       string
	Description string
	Add         func(store command.GuildStore, guildID, roleID string) error
	Remove      func(store command.GuildStore, guildID, roleID string) error
	List        func(record *storage.GuildRecord) []string
}

// AdminRoles configures the command for the guild's admin role set.
var AdminRoles = Spec{
	CommandName: "adminroles",
	Title:       "Admin Roles",
	Description: "Adds, removes or shows the admin roles of your guild",
	Add: func(store command.GuildStore, guildID, roleID string) error {
		return store.AddAdminRole(guildID, roleID)
	},
	Remove: func(store command.GuildStore, guildID, roleID string) error {
		return store.RemoveAdminRole(guildID, roleID)
	},
	List: func(record *storage.GuildRecord) []string { return record.AdminRoleIDs },
}

// ForbiddenRoles configures the command for the forbidden-override role set.
var ForbiddenRoles = Spec{
	CommandName: "forbiddenroles",
	Title:       "Forbidden Roles",
	Description: "Adds, removes or shows the forbidden override roles of your guild",
	Add: func(store command.GuildStore, guildID, roleID string) error {
		return store.AddForbiddenRole(guildID, roleID)
	},
	Remove: func(store command.GuildStore, guildID, roleID string) error {
		return store.RemoveForbiddenRole(guildID, roleID)
	},
	List: func(record *storage.GuildRecord) []string { return record.ForbiddenRoleIDs },
}

type Command struct {
	spec  Spec
	gate  command.Gate
	store command.GuildStore
	verbs map[string]command.VerbFunc
}

func New(spec Spec, gate command.Gate, store command.GuildStore) *Command {
	c := &Command{spec: spec, gate: gate, store: store}
	c.verbs = map[string]command.VerbFunc{
		"add":    c.add,
		"remove": c.remove,
		"show":   c.show,
	}
	return c
}

func (c *Command) Name() string        { return c.spec.CommandName }
func (c *Command) Description() string { return c.spec.Description }

func (c *Command) Run(ctx context.Context, inv *cmd.Invocation) error {
	mctx, ok := inv.Data.(*command.Context)
	if !ok {
		return nil
	}
	return command.RunVerbs(ctx, mctx, inv.Args, c.verbs)
}

func (c *Command) add(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] %s: access check: %v", c.Name(), err)
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

	if err := c.spec.Add(c.store, mctx.Message.GuildID, roleID); err != nil {
		return command.ReplyStoreError(mctx, c.Name(), err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) remove(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] %s: access check: %v", c.Name(), err)
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

	if err := c.spec.Remove(c.store, mctx.Message.GuildID, args[1]); err != nil {
		return command.ReplyStoreError(mctx, c.Name(), err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) show(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] %s: access check: %v", c.Name(), err)
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
		return command.ReplyStoreError(mctx, c.Name(), err)
	}
	if !exists {
		return mctx.Reply("Your guild is not set yet")
	}

	ids := c.spec.List(record)
	if len(ids) == 0 {
		return mctx.Reply(fmt.Sprintf("You don't have any %s set up", strings.ToLower(c.spec.Title)))
	}

	var lines strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&lines, "%s - @%s\n", id, command.RoleName(mctx.Session, mctx.Message.GuildID, id))
	}
	msg := embed.NewEmbed().
		SetTitle(c.spec.Title).
		SetColor(embedColor).
		AddField("Ids and Names", lines.String())
	return mctx.ReplyEmbed(msg.MessageEmbed)
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     c.spec.CommandName,
		Description: c.spec.Description,
		Template:    fmt.Sprintf("%s <add|remove|show> <role id>", c.spec.CommandName),
		Examples: []string{
			fmt.Sprintf("`@BGSBot %s add 123456789012345678`", c.spec.CommandName),
			fmt.Sprintf("`@BGSBot %s remove 123456789012345678`", c.spec.CommandName),
			fmt.Sprintf("`@BGSBot %s show`", c.spec.CommandName),
		},
	}
}
