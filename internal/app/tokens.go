package app

import "sync/atomic"

// tokenBridge breaks the construction cycle between the API client and
// the session store: the client needs a token source, the store needs the
// client. The bridge is handed to the client empty and bound to the store
// once the store exists.
type tokenBridge struct {
	source atomic.Pointer[tokenSource]
}

type tokenSource interface {
	Token() string
}

func (b *tokenBridge) bind(src tokenSource) {
	b.source.Store(&src)
}

// Token returns the current session token, or "" before login.
func (b *tokenBridge) Token() string {
	if src := b.source.Load(); src != nil {
		return (*src).Token()
	}
	return ""
}
