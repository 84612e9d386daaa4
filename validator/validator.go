// Package validator classifies user messages as in or out of scope for the
// wellness coach. The classifier is a language model answering with a
// "VALID" / "INVALID: <redirect>" marker; the marker is parsed here once and
// exposed as a typed Verdict so nothing downstream inspects model text.
package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/logging"
)

const (
	validMarker   = "VALID"
	invalidMarker = "INVALID"
)

// DefaultRedirect is returned for an invalid message when the model gives no redirect text.
const DefaultRedirect = "I'm here to help with your health and wellness journey! What would you like to know about nutrition, fitness, mental health, or healthy habits?"

// SystemPrompt is the fixed policy the validator session is seeded with.
const SystemPrompt = `You are a wellness conversation validator. Your job is to determine if user input is appropriate for a health and wellness coach conversation.

VALID inputs include:
- Health and wellness questions
- Fitness and exercise queries
- Nutrition and diet questions
- Mental health and stress management
- Sleep and recovery topics
- Goal setting and motivation
- Habit formation and lifestyle changes
- General health concerns (non-medical)

INVALID inputs include:
- Requests for specific medical diagnosis
- Medication advice or dosage questions
- Treatment for serious medical conditions
- Requests for illegal substances or dangerous practices
- Off-topic conversations unrelated to health/wellness
- Inappropriate or harmful content

Response format:
- If valid: "VALID"
- If invalid: "INVALID: [Brief redirect message to wellness topics]"

Be lenient with wellness-related questions and only mark as invalid if clearly inappropriate or potentially harmful.`

// Verdict is the typed outcome of a validation.
type Verdict struct {
	Valid bool
	// Redirect is the message shown to the user when Valid is false.
	Redirect string
}

// Valid is the verdict for in-scope input.
var Valid = Verdict{Valid: true}

// Invalid builds a verdict rejecting input with the given redirect.
func Invalid(redirect string) Verdict { return Verdict{Redirect: redirect} }

// Options configure an InputValidator.
type Options struct {
	Logger logging.Logger
}

// InputValidator asks a chat session whether a message is in scope.
type InputValidator struct {
	chat   core.Chat
	logger logging.Logger
}

// New creates a validator on top of chat, which should be seeded with SystemPrompt.
func New(chat core.Chat, optFns ...func(o *Options)) *InputValidator {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &InputValidator{chat: chat, logger: opts.Logger}
}

// Validate classifies text given recent exchanges. It fails open: a
// classifier error or an unrecognized answer yields Valid.
func (v *InputValidator) Validate(ctx context.Context, text string, recent []core.Exchange) Verdict {
	reply, err := v.chat.Send(ctx, buildPrompt(text, recent))
	if err != nil {
		v.logger.Warn("Validation failed, allowing input", "error", err)
		return Valid
	}
	verdict := Parse(reply)
	if !verdict.Valid {
		v.logger.Info("Input rejected by validator")
	}
	return verdict
}

// Reset restarts the validator conversation.
func (v *InputValidator) Reset() { v.chat.Reset() }

// Parse converts a marker-prefixed classifier answer into a Verdict.
func Parse(reply string) Verdict {
	result := strings.TrimSpace(reply)
	switch {
	case strings.HasPrefix(result, validMarker):
		return Valid
	case strings.HasPrefix(result, invalidMarker):
		redirect := strings.TrimLeft(strings.TrimPrefix(result, invalidMarker), ":-–— \t")
		redirect = strings.TrimSpace(redirect)
		if redirect == "" {
			redirect = DefaultRedirect
		}
		return Invalid(redirect)
	default:
		return Valid
	}
}

func buildPrompt(text string, recent []core.Exchange) string {
	return fmt.Sprintf(`Validate this user input: "%s"

Previous conversation context: %s

Is this appropriate for a wellness coach?`, text, ContextJSON(recent))
}

// ContextJSON serializes exchanges for inclusion in prompts. It never fails;
// an encoding error yields an empty list.
func ContextJSON(exchanges []core.Exchange) string {
	if len(exchanges) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(exchanges)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
