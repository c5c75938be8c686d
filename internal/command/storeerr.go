package command

import (
	"errors"
	"log"

	"github.com/StillKrisi/bgsbot/internal/storage"
)

// ReplyStoreError turns a storage failure into a user response: a missing
// guild record gets the set-up hint, anything else is logged with a generic
// failure message.
func ReplyStoreError(mctx *Context, cmdName string, err error) error {
	if errors.Is(err, storage.ErrGuildNotSet) {
		return mctx.Reply("Your guild is not set yet")
	}
	log.Printf("[ERR] %s: storage: %v", cmdName, err)
	return mctx.Respond(Fail)
}
