// Package mail builds and delivers the order notification emails. The SMTP
// relay is treated as an opaque send-and-acknowledge collaborator: a send
// either is accepted by the relay or returns an error, with no delivery
// guarantee beyond that.
package mail

import "context"

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers one message through the relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
