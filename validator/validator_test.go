package validator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Verdict
	}{
		{"valid", "VALID", Valid},
		{"valid with padding", "  VALID - looks fine\n", Valid},
		{"invalid with redirect", "INVALID: Please ask your doctor about dosages.", Invalid("Please ask your doctor about dosages.")},
		{"invalid with dash", "INVALID - Let's talk about sleep instead.", Invalid("Let's talk about sleep instead.")},
		{"invalid bare", "INVALID", Invalid(DefaultRedirect)},
		{"invalid colon only", "INVALID:   ", Invalid(DefaultRedirect)},
		{"unrecognized", "Sure, that's fine.", Valid},
		{"empty", "", Valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.reply))
		})
	}
}

func TestInputValidator_Validate(t *testing.T) {
	chat := testutil.NewScriptedChat("INVALID: I can't help with prescriptions.")
	v := New(chat)

	recent := []core.Exchange{{User: "hi", Agent: "hello", CreatedAt: time.Unix(1700000000, 0)}}
	verdict := v.Validate(context.Background(), "How much ibuprofen should I take?", recent)

	assert.False(t, verdict.Valid)
	assert.Equal(t, "I can't help with prescriptions.", verdict.Redirect)

	prompt := chat.LastPrompt()
	assert.Contains(t, prompt, `Validate this user input: "How much ibuprofen should I take?"`)
	assert.Contains(t, prompt, `"user":"hi"`)
	assert.Contains(t, prompt, "Is this appropriate for a wellness coach?")
}

func TestInputValidator_FailsOpen(t *testing.T) {
	chat := testutil.NewScriptedChat().Fail(errors.New("quota"))
	verdict := New(chat).Validate(context.Background(), "anything", nil)
	assert.Equal(t, Valid, verdict)
	assert.Contains(t, chat.LastPrompt(), "Previous conversation context: []")
}

func TestInputValidator_Reset(t *testing.T) {
	chat := testutil.NewScriptedChat()
	New(chat).Reset()
	assert.Equal(t, 1, chat.Resets())
}

func TestContextJSON(t *testing.T) {
	assert.Equal(t, "[]", ContextJSON(nil))

	out := ContextJSON([]core.Exchange{{User: "u", Agent: "a"}})
	require.NotEmpty(t, out)
	assert.JSONEq(t, `[{"user":"u","agent":"a","timestamp":0,"date":""}]`, out)
}
