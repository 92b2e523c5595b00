package b2b

import "github.com/stoyanovb/gradina-api/internal/application/notify"

// Notifier is the fire-and-forget notification port; satisfied by
// *notify.Dispatcher. Enqueue must never block or return an error: a
// notification failure is not a workflow failure.
type Notifier interface {
	Enqueue(e notify.Event)
}

// JWTConfig carries token issuing settings into the login gate.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}
