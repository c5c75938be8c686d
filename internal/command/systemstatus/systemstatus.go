// Package systemstatus implements the system report command: one system
// lookup fanned out into a faction lookup per present minor faction, rendered
// as sorted, paginated embed pages.
package systemstatus

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

func (c *Command) Name() string        { return "systemstatus" }
func (c *Command) Description() string { return "Gets the details of a system" }

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
		log.Printf("[ERR] systemstatus: access check: %v", err)
		return mctx.Respond(command.Fail)
	}
	if !allowed {
		return mctx.Respond(command.InsufficientPerms)
	}

	if len(args) < 2 {
		return mctx.Respond(command.NoParams)
	}
	systemName := strings.Join(args[1:], " ")

	pref, err := c.store.SortPreference(mctx.Message.GuildID)
	if err != nil {
		log.Printf("[ERR] systemstatus: sort preference: %v", err)
		return mctx.Respond(command.Fail)
	}

	pages, err := c.reports.SystemReport(ctx, systemName, pref)
	if err != nil {
		var fanOut *report.FanOutError
		switch {
		case errors.Is(err, report.ErrSystemNotFound):
			return mctx.Reply("System not found")
		case errors.As(err, &fanOut):
			log.Printf("[ERR] systemstatus: report for %q: %v", systemName, err)
			return mctx.Respond(command.Fail)
		default:
			// Failed system fetch: logged, no user-facing report.
			log.Printf("[ERR] systemstatus: report for %q: %v", systemName, err)
			return nil
		}
	}

	for _, page := range pages {
		if err := mctx.ReplyEmbed(page); err != nil {
			log.Printf("[WARN] systemstatus: failed to send report page: %v", err)
		}
	}
	return nil
}

func (c *Command) Help() cmd.HelpEntry {
	return cmd.HelpEntry{
		Command:     "systemstatus",
		Description: "Gets the details of a system",
		Template:    "systemstatus get <system name>",
		Examples:    []string{"`@BGSBot systemstatus get qa'wakana`"},
	}
}
