package discord

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// StripMention removes every mention of the bot user from content and
// collapses the rest to single-space-separated trimmed text.
func StripMention(content, botUserID string) string {
	mention := regexp.MustCompile(`<@!?` + regexp.QuoteMeta(botUserID) + `>`)
	content = mention.ReplaceAllString(content, "")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(content, " "))
}

// SplitCommand splits stripped message text into the command name and its
// argument tokens. An empty message yields an empty name.
func SplitCommand(content string) (name string, args []string) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
