package discord

import (
	"github.com/bwmarrin/discordgo"
)

// sessionResponder sends command output through a live Discord session.
type sessionResponder struct {
	s *discordgo.Session
}

func (r sessionResponder) Send(channelID, content string) error {
	_, err := r.s.ChannelMessageSend(channelID, content)
	return err
}

func (r sessionResponder) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := r.s.ChannelMessageSendEmbed(channelID, embed)
	return err
}
