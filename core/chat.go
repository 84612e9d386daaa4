package core

import "context"

// Chat is a conversational session with a language model. The session keeps
// its own history; callers send only the newest prompt.
type Chat interface {
	// Send appends prompt to the session and returns the model reply.
	Send(ctx context.Context, prompt string) (string, error)
	// Reset drops the history, returning the session to its seeded state.
	Reset()
}
