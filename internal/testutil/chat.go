package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/wellcoach/core"
)

// ErrScriptExhausted is returned by ScriptedChat when no reply is left.
var ErrScriptExhausted = errors.New("scripted chat: no reply left")

var _ core.Chat = (*ScriptedChat)(nil)

// ScriptedChat replays queued replies and records every prompt it receives.
type ScriptedChat struct {
	mu      sync.Mutex
	replies []scriptedReply
	prompts []string
	resets  int
}

type scriptedReply struct {
	text  string
	err   error
	panic any
}

// NewScriptedChat creates a chat that answers with replies in order.
func NewScriptedChat(replies ...string) *ScriptedChat {
	c := &ScriptedChat{}
	for _, r := range replies {
		c.Reply(r)
	}
	return c
}

// Reply queues a successful reply (chainable).
func (c *ScriptedChat) Reply(text string) *ScriptedChat {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies = append(c.replies, scriptedReply{text: text})
	return c
}

// Fail queues an error (chainable).
func (c *ScriptedChat) Fail(err error) *ScriptedChat {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies = append(c.replies, scriptedReply{err: err})
	return c
}

// Panic queues a panic with value v (chainable).
func (c *ScriptedChat) Panic(v any) *ScriptedChat {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies = append(c.replies, scriptedReply{panic: v})
	return c
}

// Send implements core.Chat.
func (c *ScriptedChat) Send(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	if len(c.replies) == 0 {
		c.mu.Unlock()
		return "", ErrScriptExhausted
	}
	next := c.replies[0]
	c.replies = c.replies[1:]
	c.mu.Unlock()

	if next.panic != nil {
		panic(next.panic)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return next.text, next.err
}

// Reset implements core.Chat by counting resets.
func (c *ScriptedChat) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resets++
}

// Prompts returns the prompts received so far.
func (c *ScriptedChat) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}

// LastPrompt returns the most recent prompt or "".
func (c *ScriptedChat) LastPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.prompts) == 0 {
		return ""
	}
	return c.prompts[len(c.prompts)-1]
}

// Resets returns how often Reset was called.
func (c *ScriptedChat) Resets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}
