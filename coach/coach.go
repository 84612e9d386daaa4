// Package coach implements the wellness coach orchestrator. A Coach owns the
// conversation memory, the user state and two chat sessions (coach persona
// and input validator) and runs every user turn through a fixed pipeline:
//
//	intake → validate → trigger check → search → context assembly →
//	generation → citation footer → memory commit
//
// Failures degrade the turn instead of failing it: validator errors let the
// input through, search errors drop the augmentation, and generation errors
// produce a fixed apology without touching memory.
package coach

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/internal/prompt"
	"github.com/hupe1980/wellcoach/logging"
	"github.com/hupe1980/wellcoach/memory"
	"github.com/hupe1980/wellcoach/model"
	"github.com/hupe1980/wellcoach/search"
	"github.com/hupe1980/wellcoach/session"
	"github.com/hupe1980/wellcoach/validator"
)

const (
	// DefaultSearchCount is the number of results requested per search.
	DefaultSearchCount = 5
	// DefaultContextSize is the number of recent exchanges given to the models.
	DefaultContextSize = memory.DefaultContextSize
	// promptResults is how many ranked results are quoted in the prompt and footer.
	promptResults = 3
)

// Options configure a Coach.
type Options struct {
	// Searcher serves search augmentation; defaults to a Searcher without a provider.
	Searcher *search.Searcher
	// Triggers decides when a turn searches; defaults to search.NewTriggerClassifier().
	Triggers *search.TriggerClassifier
	// Store persists sessions; defaults to a FileStore in the working directory.
	Store core.SnapshotStore
	// Logger records turn outcomes and degraded paths.
	Logger logging.Logger
	// Now is the clock for memory, goals and tracking.
	Now func() time.Time
	// Stream requests incremental output from the models.
	Stream         bool
	SearchCount    int
	ContextSize    int
	MemoryCapacity int
}

// Coach is the stateful conversational orchestrator. Turns are serialized.
type Coach struct {
	mu sync.Mutex

	id        string
	chat      core.Chat
	validator *validator.InputValidator
	searcher  *search.Searcher
	triggers  *search.TriggerClassifier
	memory    *memory.ConversationMemory
	state     *session.State
	store     core.SnapshotStore
	logger    logging.Logger
	now       func() time.Time
	opts      Options
}

// New builds a Coach over two models: one for the coach persona and one for
// the input validator. Each gets its own ChatSession seeded with its system prompt.
func New(coachModel, validatorModel model.Model, optFns ...func(o *Options)) *Coach {
	opts := resolveOptions(optFns)
	coachChat := model.NewChatSession(coachModel, SystemPrompt, func(o *model.ChatSessionOptions) {
		o.Name = "coach"
		o.Stream = opts.Stream
		o.Logger = opts.Logger
	})
	validatorChat := model.NewChatSession(validatorModel, validator.SystemPrompt, func(o *model.ChatSessionOptions) {
		o.Name = "validator"
		o.Logger = opts.Logger
	})
	return newCoach(coachChat, validatorChat, opts)
}

// NewWithChats builds a Coach over existing chat sessions.
func NewWithChats(coachChat, validatorChat core.Chat, optFns ...func(o *Options)) *Coach {
	return newCoach(coachChat, validatorChat, resolveOptions(optFns))
}

func resolveOptions(optFns []func(o *Options)) Options {
	opts := Options{
		Logger:         logging.NoOpLogger{},
		Now:            time.Now,
		SearchCount:    DefaultSearchCount,
		ContextSize:    DefaultContextSize,
		MemoryCapacity: memory.DefaultCapacity,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Searcher == nil {
		opts.Searcher = search.New(nil, func(o *search.Options) {
			o.Now = opts.Now
			o.Logger = opts.Logger
		})
	}
	if opts.Triggers == nil {
		opts.Triggers = search.NewTriggerClassifier()
	}
	if opts.Store == nil {
		opts.Store = session.NewFileStore("", func(o *session.FileStoreOptions) { o.Now = opts.Now })
	}
	return opts
}

func newCoach(coachChat, validatorChat core.Chat, opts Options) *Coach {
	return &Coach{
		id:   uuid.NewString(),
		chat: coachChat,
		validator: validator.New(validatorChat, func(o *validator.Options) {
			o.Logger = opts.Logger
		}),
		searcher: opts.Searcher,
		triggers: opts.Triggers,
		memory: memory.NewConversationMemory(func(o *memory.Options) {
			o.Capacity = opts.MemoryCapacity
			o.Now = opts.Now
		}),
		state:  session.NewState(func(o *session.Options) { o.Now = opts.Now }),
		store:  opts.Store,
		logger: opts.Logger,
		now:    opts.Now,
		opts:   opts,
	}
}

// ID returns the session identifier carried into saved snapshots.
func (c *Coach) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// State exposes the profile, goals and tracking of the session.
func (c *Coach) State() *session.State { return c.state }

// Chat runs one user turn and returns the reply. It never fails: degraded
// paths return fixed replies.
func (c *Coach) Chat(ctx context.Context, input string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.now()
	text := strings.TrimSpace(input)
	if text == "" {
		return EmptyInputReply
	}

	recent := c.memory.Recent(c.opts.ContextSize)
	if verdict := c.validator.Validate(ctx, text, recent); !verdict.Valid {
		c.logger.Info("Turn redirected", "duration", c.now().Sub(start))
		return verdict.Redirect
	}

	reply, searched, err := c.respond(ctx, text, recent)
	if err != nil {
		c.logger.Error("Turn failed", "error", err, "searched", searched)
		return ApologyReply
	}
	c.logger.Info("Turn completed", "searched", searched, "memory_len", c.memory.Len(), "duration", c.now().Sub(start))
	return reply
}

// respond covers the steps after validation. Panics are converted to errors
// so a turn can never take the process down.
func (c *Coach) respond(ctx context.Context, text string, recent []core.Exchange) (reply string, searched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("turn panicked: %v", r)
		}
	}()

	var results *core.ResultSet
	if c.triggers.ShouldSearch(text) {
		searched = true
		rs, serr := c.searcher.Search(ctx, text, c.opts.SearchCount)
		switch {
		case serr != nil:
			c.logger.Warn("Continuing without search results", "error", serr)
		case len(rs.Results) > 0:
			results = rs
		}
	}

	turn := prompt.Turn{
		Message:  text,
		Recent:   recent,
		Profile:  c.state.Profile(),
		Goals:    c.state.Goals(),
		Progress: c.state.ProgressSummary(),
		Tracking: c.state.RecentTracking(session.RecentActivityDays),
	}
	if results != nil {
		turn.Search = &prompt.SearchContext{
			Query: results.Query,
			Count: len(results.Results),
			Top:   results.Top(promptResults),
		}
	}
	composite, err := prompt.BuildTurn(turn)
	if err != nil {
		return "", searched, fmt.Errorf("build prompt: %w", err)
	}

	reply, err = c.chat.Send(ctx, composite)
	if err != nil {
		return "", searched, fmt.Errorf("generate reply: %w", err)
	}
	if results != nil {
		reply += CitationFooter(results)
	}

	c.memory.Append(text, reply)
	return reply, searched, nil
}

// CitationFooter names the distinct sources of the top results and the total source count.
func CitationFooter(rs *core.ResultSet) string {
	seen := map[string]bool{}
	var sources []string
	for _, r := range rs.Top(promptResults) {
		if seen[r.Source] {
			continue
		}
		seen[r.Source] = true
		sources = append(sources, r.Source)
	}
	return fmt.Sprintf("\n\n📚 Sources: Based on current research from %d sources including %s.",
		len(rs.Results), strings.Join(sources, ", "))
}

// Search runs an on-demand search and formats the results for display.
// Errors are returned as display text.
func (c *Coach) Search(ctx context.Context, query string) string {
	rs, err := c.searcher.Search(ctx, query, c.opts.SearchCount)
	if err != nil {
		return "❌ Search error: " + err.Error()
	}
	if len(rs.Results) == 0 {
		return NoResultsReply
	}
	return search.FormatResults(rs, c.opts.SearchCount)
}

// History returns a copy of the conversation memory, oldest first.
func (c *Coach) History() []core.Exchange { return c.memory.All() }

// ClearConversation wipes conversation memory and restarts both chat
// sessions. Profile, goals and tracking are kept.
func (c *Coach) ClearConversation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memory.Clear()
	c.chat.Reset()
	c.validator.Reset()
	c.logger.Info("Conversation cleared")
}
