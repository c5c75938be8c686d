// Package discord adapts the transport-agnostic command core to a Discord
// session: mention-gated message dispatch, canned responses, and sequential
// embed emission.
package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/StillKrisi/bgsbot/internal/command"
	"github.com/StillKrisi/bgsbot/internal/config"
	"github.com/StillKrisi/bgsbot/internal/storage"
	"github.com/StillKrisi/bgsbot/pkg/cmd"
)

// Bot is the Discord front end.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	registry *cmd.Registry
	storage  *storage.Storage
}

// NewBot wires a Bot; Run starts it.
func NewBot(cfg *config.Config, registry *cmd.Registry, store *storage.Storage) *Bot {
	return &Bot{cfg: cfg, registry: registry, storage: store}
}

// Run opens the Discord session and blocks until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s, serving %d guilds", r.User.Username, len(r.Guilds))
}

// onMessageCreate dispatches mention-prefixed commands. Each handler call
// already runs on its own goroutine, so one slow report never blocks another.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	mentioned := false
	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return
	}

	mctx := &command.Context{
		Session:   s,
		Message:   m,
		Responder: sessionResponder{s: s},
	}

	name, args := SplitCommand(StripMention(m.Content, s.State.User.ID))
	if name == "" {
		if err := mctx.Respond(command.NoCommand); err != nil {
			log.Printf("[WARN] Failed to send response: %v", err)
		}
		return
	}

	c := b.registry.Get(name)
	if c == nil {
		if err := mctx.Respond(command.NotACommand); err != nil {
			log.Printf("[WARN] Failed to send response: %v", err)
		}
		return
	}

	log.Printf("[INFO] %s command requested by %s", name, m.Author.Username)
	if err := c.Run(context.Background(), &cmd.Invocation{Args: args, Data: mctx}); err != nil {
		log.Printf("[ERR] Error running command %s: %v", name, err)
	}
}
