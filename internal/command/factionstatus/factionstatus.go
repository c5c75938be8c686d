// Package factionstatus implements the faction report command: a single
// faction lookup rendered as one field per system the faction occupies.
package factionstatus

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/StillKrisi/bgsbot/internal/access"
	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/internal/report"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

type Command struct {
	gate    command.Gate
	store   command.GuildStore
	reports command.Reporter
	verbs   map[string]command.VerbFunc
}

func New(gate command.Gate, store command.GuildStore, reports command.Reporter) *Command {
	c := &Command{gate: gate, store: store, reports: reports}
	c.verbs = map[string]command.VerbFunc{
		"get": c.get,
	}
	return c
}

func (c *Command) Name() string        { return "factionstatus" }
func (c *Command) Description() string { return "Gets the details of a faction" }

func (c *Command) Run(ctx context.Context, inv *cmd.Invocation) error {
	mctx, ok := inv.Data.(*command.Context)
	if !ok {
		return nil
	}
	return command.RunVerbs(ctx, mctx, inv.Args, c.verbs)
}

func (c *Command) get(ctx context.Context, mctx *command.Context, args []string) error {
	allowed, err := c.gate.Has(mctx.Message.Member, mctx.Message.GuildID, access.Admin, access.BGS, access.Forbidden)
	if err != nil {
		log.Printf("[ERR] factionstatus: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) < 2 {
		return mctx.Respond(command.NoParams)
	}
	factionName := strings.Join(args[1:], " ")

	pref, err := c.store.SortPreference(mctx.Message.GuildID)
	if err != nil {
		log.Printf("[ERR] factionstatus: sort preference: %v", err)
		return mctx.Respond(command.Fail)
	}

	pages, err := c.reports.FactionReport(ctx, factionName, pref)
	if err != nil {
		if errors.Is(err, report.ErrFactionNotFound) {
			return mctx.Reply("Faction not found")
		}
		log.Printf("[ERR] factionstatus: report for %q: %v", factionName, err)
		return mctx.Respond(command.Fail)
	}

	for _, page := range pages {
		if err := mctx.ReplyEmbed(page); err != nil {
			log.Printf("[WARN] factionstatus: failed to send report page: %v", err)
		}
	}
	return nil
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "factionstatus",
		Description: "Gets the details of a faction",
		Template:    "factionstatus get <faction name>",
		Examples:    []string{"`@BGSBot factionstatus get lave jet boys`"},
	}
}
