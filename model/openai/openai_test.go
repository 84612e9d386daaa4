package openai

import (
	"testing"

	"github.com/hupe1980/wellcoach/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	msgs := buildMessages(model.Request{
		Instructions: "be a coach",
		Messages: []model.Message{
			{Role: model.RoleUser, Text: "hi"},
			{Role: model.RoleAssistant, Text: "hello"},
			{Role: model.RoleUser, Text: ""},
		},
	})
	require.Len(t, msgs, 3)
	assert.NotNil(t, msgs[0].OfSystem)
	assert.NotNil(t, msgs[1].OfUser)
	assert.NotNil(t, msgs[2].OfAssistant)
}

func TestInfo(t *testing.T) {
	m := NewModel(func(o *Options) {
		o.APIKey = "test"
		o.Model = "gpt-test"
	})
	assert.Equal(t, model.Info{Name: "gpt-test", Provider: "openai"}, m.Info())
}
