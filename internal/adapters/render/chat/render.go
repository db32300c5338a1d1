package chat

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Renderer styles the terminal chat session. The reply text itself is
// produced by the application formatter and passed through unchanged.
type Renderer struct {
	styles styles
}

func NewRenderer() Renderer {
	return Renderer{styles: newStyles()}
}

func (r Renderer) Banner(userID string) string {
	return r.styles.banner.Render(fmt.Sprintf("FinGenie chat (user %s) — type a message, Ctrl+D to quit", userID))
}

func (r Renderer) Prompt(userID string) string {
	return r.styles.prompt.Render(userID + " > ")
}

func (r Renderer) Reply(text string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.bot.Render("fingenie:"),
		r.styles.reply.Render(text),
	)
}
