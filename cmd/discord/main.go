package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/StillKrisi/bgsbot/internal/access"
	"github.com/StillKrisi/bgsbot/internal/command/bgschannel"
	"github.com/StillKrisi/bgsbot/internal/command/bgsrole"
	"github.com/StillKrisi/bgsbot/internal/command/factionstatus"
	"github.com/StillKrisi/bgsbot/internal/command/help"
	"github.com/StillKrisi/bgsbot/internal/command/hi"
	"github.com/StillKrisi/bgsbot/internal/command/myguild"
	"github.com/StillKrisi/bgsbot/internal/command/roleset"
	sortcmd "github.com/StillKrisi/bgsbot/internal/command/sort"
	"github.com/StillKrisi/bgsbot/internal/command/systemstatus"
	"github.com/StillKrisi/bgsbot/internal/config"
	"github.com/StillKrisi/bgsbot/internal/discord"
	"github.com/StillKrisi/bgsbot/internal/ebgs"
	"github.com/StillKrisi/bgsbot/internal/middleware"
	"github.com/StillKrisi/bgsbot/internal/report"
	"github.com/StillKrisi/bgsbot/internal/storage"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

func main() {
	log.Println("[INFO] Starting BGSBot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	gate := access.NewGate(store)
	stats := ebgs.NewClient(cfg.EBGSAPIURL, cfg.FetchTimeout, cfg.FetchRate, cfg.FetchBurst)
	reports := report.NewAggregator(stats)

	registry := cmd.NewRegistry()
	register := func(c cmd.Command) {
		registry.Register(cmd.Apply(c,
			middleware.WithGuildOnly(),
			middleware.WithCommandLogger(store),
		))
	}

	register(hi.New())
	register(help.New(registry))
	register(myguild.New(gate, store))
	register(bgsrole.New(gate, store))
	register(roleset.New(roleset.AdminRoles, gate, store))
	register(roleset.New(roleset.ForbiddenRoles, gate, store))
	register(bgschannel.New(gate, store))
	register(sortcmd.New(gate, store))
	register(systemstatus.New(gate, store, reports))
	register(factionstatus.New(gate, store, reports))

	bot := discord.NewBot(cfg, registry, store)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
