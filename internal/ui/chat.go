package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/aegis/internal/chat"
	"github.com/zhubert/aegis/internal/keys"
)

// StopwatchTickMsg is sent to update the stopwatch display
type StopwatchTickMsg time.Time

// thinkingVerbs cycle while waiting for the first increment
var thinkingVerbs = []string{
	"Decrypting",
	"Indexing",
	"Scanning sectors",
	"Correlating",
	"Resolving shards",
	"Querying core",
	"Parsing",
	"Cross-referencing",
	"Synthesizing",
	"Routing",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// Chat is the assistant panel: transcript above, input below.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	dimmed   bool

	messages []chat.Message
	pending  string

	streaming     bool
	waitStartTime time.Time
	waitingVerb   string

	notice     string
	suggestion string
	uploading  bool
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Ask the core about your files..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	chatPanelHeight := height - InputTotalHeight
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := ctx.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	if innerWidth < 1 {
		innerWidth = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	inputInnerWidth := ctx.InnerWidth(width) - InputPaddingWidth
	if inputInnerWidth < 1 {
		inputInnerWidth = 1
	}
	c.input.SetWidth(inputInnerWidth)

	ctx.Log("Chat.SetSize", "width", width, "height", height, "viewportHeight", viewportHeight)
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetDimmed renders the panel behind a scrim while a drawer is open
func (c *Chat) SetDimmed(dimmed bool) {
	c.dimmed = dimmed
}

// SetTranscript replaces the committed messages and the in-progress reply.
// The stopwatch starts when streaming flips on.
func (c *Chat) SetTranscript(messages []chat.Message, pending string, streaming bool) {
	if streaming && !c.streaming {
		c.waitStartTime = time.Now()
		c.waitingVerb = randomThinkingVerb()
	}
	c.messages = messages
	c.pending = pending
	c.streaming = streaming
	c.updateContent()
}

// SetNotice sets the failure line; empty hides it
func (c *Chat) SetNotice(notice string) {
	c.notice = notice
	c.updateContent()
}

// SetSuggestion sets the file name offered by the last reply; empty hides it
func (c *Chat) SetSuggestion(name string) {
	c.suggestion = name
	c.updateContent()
}

// SetUploading toggles the upload busy indicator
func (c *Chat) SetUploading(uploading bool) {
	c.uploading = uploading
	c.updateContent()
}

// IsStreaming returns whether a reply is in flight
func (c *Chat) IsStreaming() bool {
	return c.streaming
}

// GetInput returns the current input text
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func (c *Chat) writeTurn(sb *strings.Builder, role chat.Role, content string, wrapWidth int) {
	if sb.Len() > 0 {
		sb.WriteString("\n\n")
	}
	if role == chat.RoleUser {
		sb.WriteString(ChatUserStyle.Render("You:"))
	} else {
		sb.WriteString(ChatAssistantStyle.Render("Aegis:"))
	}
	sb.WriteString("\n")
	sb.WriteString(RenderMarkdown(strings.TrimSpace(content), wrapWidth))
}

func (c *Chat) updateContent() {
	var sb strings.Builder

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	// The greeting is display-only and never part of the transcript
	c.writeTurn(&sb, chat.RoleAssistant, chat.WelcomeMessage, wrapWidth)

	for _, msg := range c.messages {
		c.writeTurn(&sb, msg.Role, msg.Content, wrapWidth)
	}

	if c.streaming {
		if c.pending != "" {
			c.writeTurn(&sb, chat.RoleAssistant, c.pending, wrapWidth)
		} else {
			elapsed := time.Since(c.waitStartTime)
			stopwatchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
			sb.WriteString("\n\n")
			sb.WriteString(ChatAssistantStyle.Render("Aegis:"))
			sb.WriteString("\n")
			sb.WriteString(StatusLoadingStyle.Render(c.waitingVerb + "... "))
			sb.WriteString(stopwatchStyle.Render(formatElapsed(elapsed)))
		}
	}

	if c.notice != "" {
		sb.WriteString("\n\n")
		sb.WriteString(ChatNoticeStyle.Render("✕ " + c.notice))
	}

	if c.suggestion != "" && !c.streaming {
		sb.WriteString("\n\n")
		sb.WriteString(ChatSuggestionStyle.Render("↗ Open " + c.suggestion + " (ctrl+o)"))
	}

	if c.uploading {
		sb.WriteString("\n\n")
		sb.WriteString(StatusLoadingStyle.Render("⇪ Uploading to cluster..."))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if _, ok := msg.(StopwatchTickMsg); ok {
		if c.streaming && c.pending == "" {
			c.updateContent()
			cmds = append(cmds, StopwatchTick())
		}
		return c, tea.Batch(cmds...)
	}

	if c.focused {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, keys.Home, keys.End:
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			// Typing never scrolls the transcript
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	out := lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
	if c.dimmed {
		return ScrimStyle.Render(ansi.Strip(out))
	}
	return out
}
