package command

import "math/rand"

// ResponseKind selects a family of canned reply phrases.
type ResponseKind int

const (
	// NoCommand: the mention carried no command token at all.
	NoCommand ResponseKind = iota
	// NotACommand: the command or verb is not one the bot knows.
	NotACommand
	// NoParams: the verb needed more arguments than it got.
	NoParams
	// TooManyParams: the verb got more arguments than it takes.
	TooManyParams
	// Success: the operation completed.
	Success
	// Fail: something went wrong; details follow separately if at all.
	Fail
	// InsufficientPerms: the member lacks the required roles.
	InsufficientPerms
	// IDNotFound: a referenced role or channel ID does not exist in the guild.
	IDNotFound
	// Greeting: a reply to being said hi to.
	Greeting
)

var responseDict = map[ResponseKind][]string{
	NoCommand: {
		"You rang? Try an actual command next time.",
		"Yes? I need a command to do anything.",
	},
	NotACommand: {
		"That's not a command I know.",
		"Never heard of that one. Try `help`.",
		"Hmm, that's not a thing I do.",
	},
	NoParams: {
		"I need a bit more than that. Parameters, please.",
		"You forgot the parameters.",
	},
	TooManyParams: {
		"That's too many parameters.",
		"Whoa, fewer parameters please.",
	},
	Success: {
		"Done!",
		"All set.",
		"Consider it done.",
	},
	Fail: {
		"Something went wrong there.",
		"That didn't work out.",
	},
	InsufficientPerms: {
		"You don't have the permission to do that.",
		"Sorry, your roles don't allow that.",
	},
	IDNotFound: {
		"I can't find that id in this guild.",
		"That id doesn't exist here.",
	},
	Greeting: {
		"Hey there, commander!",
		"o7",
		"Hello! Ready to crunch some faction data?",
	},
}

// Phrases returns every phrase a kind can produce.
func Phrases(kind ResponseKind) []string {
	return responseDict[kind]
}

// GetResponse picks one phrase for kind.
func GetResponse(kind ResponseKind) string {
	phrases := responseDict[kind]
	if len(phrases) == 0 {
		return ""
	}
	return phrases[rand.Intn(len(phrases))]
}
