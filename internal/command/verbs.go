package command

import (
	"context"
	"strings"
)

// VerbFunc handles one sub-command verb. args includes the verb itself at
// index 0, so arity checks count it the way usage templates read.
type VerbFunc func(ctx context.Context, mctx *Context, args []string) error

// RunVerbs resolves the first argument token against a closed verb map and
// invokes the match. Anything outside the map is "not a command"; an empty
// argument list is "no parameters". The map is the entire resolution space —
// no other attribute of a command is reachable from user input.
func RunVerbs(ctx context.Context, mctx *Context, args []string, verbs map[string]VerbFunc) error {
	if len(args) == 0 {
		return mctx.Respond(NoParams)
	}

	verb := strings.ToLower(args[0])
	fn, ok := verbs[verb]
	if !ok {
		return mctx.Respond(NotACommand)
	}
	return fn(ctx, mctx, args)
}
