// Package command holds the shared context, response dictionary and verb
// dispatch helper used by every bot command package.
package command

import (
	"github.com/bwmarrin/discordgo"
)

// Responder sends command output. The Discord adapter implements it over a
// session; tests implement it with a recorder.
type Responder interface {
	Send(channelID, content string) error
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
}

// Context is what a message-dispatched command runs with.
type Context struct {
	Session   *discordgo.Session
	Message   *discordgo.MessageCreate
	Responder Responder
}

// Reply sends plain text to the invoking channel.
func (c *Context) Reply(content string) error {
	return c.Responder.Send(c.Message.ChannelID, content)
}

// ReplyEmbed sends an embed to the invoking channel.
func (c *Context) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return c.Responder.SendEmbed(c.Message.ChannelID, embed)
}

// Respond sends a canned response phrase for kind.
func (c *Context) Respond(kind ResponseKind) error {
	return c.Reply(GetResponse(kind))
}
