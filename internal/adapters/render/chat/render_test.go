package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererReplyContainsBotLabelAndText(t *testing.T) {
	t.Parallel()

	rendered := NewRenderer().Reply("Expense added successfully! ✅")
	assert.Contains(t, rendered, "fingenie:")
	assert.Contains(t, rendered, "Expense added successfully! ✅")
}

func TestRendererPromptContainsUserID(t *testing.T) {
	t.Parallel()

	assert.Contains(t, NewRenderer().Prompt("user-1"), "user-1")
}

func TestRendererBannerMentionsUser(t *testing.T) {
	t.Parallel()

	assert.Contains(t, NewRenderer().Banner("user-1"), "user-1")
}
