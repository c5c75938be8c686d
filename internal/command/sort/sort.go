// Package sort manages the guild's report ordering preference.
package sort

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

func (c *Command) Name() string { return "sort" }
func (c *Command) Description() string {
	return "Sets, removes or shows the sort order of status reports"
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
		log.Printf("[ERR] sort: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	switch {
	case len(args) > 3:
		return mctx.Respond(command.TooManyParams)
	case len(args) < 3:
		return mctx.Respond(command.NoParams)
	}

	field := strings.ToLower(args[1])
	if field != storage.SortName && field != storage.SortInfluence {
		return mctx.Reply("Sort field must be `name` or `influence`")
	}

	var order int
	switch strings.ToLower(args[2]) {
	case "ascending", "asc":
		order = storage.OrderAscending
	case "descending", "desc":
		order = storage.OrderDescending
	default:
		return mctx.Reply("Sort order must be `ascending` or `descending`")
	}

	if err := c.store.SetSort(mctx.Message.GuildID, field, order); err != nil {
		return command.ReplyStoreError(mctx, "sort", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) remove(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] sort: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) > 1 {
		return mctx.Respond(command.TooManyParams)
	}

	if err := c.store.RemoveSort(mctx.Message.GuildID); err != nil {
		return command.ReplyStoreError(mctx, "sort", err)
	}
	return mctx.Respond(command.Success)
}

func (c *Command) show(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := command.CanConfigure(c.gate, mctx)
	if err != nil {
		log.Printf("[ERR] sort: access check: %v", err)
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
		return command.ReplyStoreError(mctx, "sort", err)
	}
	if !exists {
		return mctx.Reply("Your guild is not set yet")
	}
	if record.Sort == "" || record.SortOrder == storage.OrderNone {
		return mctx.Reply("You don't have a sort order set up")
	}

	direction := "ascending"
	if record.SortOrder == storage.OrderDescending {
		direction = "descending"
	}
	msg := embed.NewEmbed().
		SetTitle("Sort Order").
		SetColor(embedColor).
		AddField("Preference", fmt.Sprintf("%s, %s", record.Sort, direction))
	return mctx.ReplyEmbed(msg.MessageEmbed)
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "sort",
		Description: "Sets, removes or shows the sort order of status reports",
		Template:    "sort <set|remove|show> <name|influence> <ascending|descending>",
		Examples: []string{
			"`@BGSBot sort set influence descending`",
			"`@BGSBot sort remove`",
			"`@BGSBot sort show`",
		},
	}
}
