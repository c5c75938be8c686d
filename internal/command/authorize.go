package command

import "github.com/StillKrisi/bgsbot/internal/access"

// CanConfigure decides whether the invoking member may change guild
// configuration: guild administrators always can (so a fresh guild can be
// bootstrapped), otherwise the gate decides on {Admin, Forbidden}.
func CanConfigure(gate Gate, mctx *Context) (bool, error) {
	if access.IsAdministrator(mctx.Session, mctx.Message.Member, mctx.Message.GuildID) {
		return true, nil
	}
	return gate.Has(mctx.Message.Member, mctx.Message.GuildID, access.Admin, access.Forbidden)
}
