package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/logging"
)

// ErrEmptyResponse is returned when a model finishes without producing text.
var ErrEmptyResponse = errors.New("model returned no response")

var _ core.Chat = (*ChatSession)(nil)

// ChatSessionOptions configure a ChatSession.
type ChatSessionOptions struct {
	// Name identifies the session persona in logs (e.g. "coach", "validator").
	Name string
	// Stream requests incremental output from the provider.
	Stream bool
	// Logger receives one entry per model call.
	Logger logging.Logger
}

// ChatSession is an explicit handle on a model conversation seeded with a
// fixed system instruction. Each Send extends the history by one user and
// one assistant message; a failed Send leaves the history untouched.
// Safe for concurrent use, although calls are serialized.
type ChatSession struct {
	model       Model
	instruction string
	opts        ChatSessionOptions

	mu      sync.Mutex
	history []Message
}

// NewChatSession creates a session for m seeded with instruction.
func NewChatSession(m Model, instruction string, optFns ...func(o *ChatSessionOptions)) *ChatSession {
	opts := ChatSessionOptions{
		Name:   "chat",
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &ChatSession{model: m, instruction: instruction, opts: opts}
}

// Send implements core.Chat.
func (s *ChatSession) Send(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]Message, len(s.history), len(s.history)+2)
	copy(msgs, s.history)
	msgs = append(msgs, Message{Role: RoleUser, Text: prompt})

	start := time.Now()
	text, err := collect(s.model.Generate(ctx, Request{
		Instructions: s.instruction,
		Messages:     msgs,
		Stream:       s.opts.Stream,
	}))
	info := s.model.Info()
	if err != nil {
		s.opts.Logger.Error("LLM call failed", "session", s.opts.Name, "model", info.Name, "duration", time.Since(start), "error", err)
		return "", fmt.Errorf("%s chat: %w", s.opts.Name, err)
	}
	s.opts.Logger.Debug("LLM call completed", "session", s.opts.Name, "model", info.Name, "duration", time.Since(start), "history_len", len(msgs)+1)

	s.history = append(msgs, Message{Role: RoleAssistant, Text: text})
	return text, nil
}

// Reset implements core.Chat.
func (s *ChatSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// History returns a copy of the conversation so far.
func (s *ChatSession) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Instruction returns the system instruction the session was seeded with.
func (s *ChatSession) Instruction() string { return s.instruction }

// collect drains both channels and returns the final text. Partial chunks
// are used only if the provider never emits a final chunk.
func collect(respCh <-chan Response, errCh <-chan error) (string, error) {
	var (
		partial  strings.Builder
		final    string
		gotFinal bool
		firstErr error
	)
	for respCh != nil || errCh != nil {
		select {
		case r, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if r.Partial {
				partial.WriteString(r.Text)
				continue
			}
			final, gotFinal = r.Text, true
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return "", firstErr
	}
	if !gotFinal {
		final = partial.String()
	}
	if final == "" {
		return "", ErrEmptyResponse
	}
	return final, nil
}
