package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestSidePanelItem(t *testing.T) {
	got := render(t, SidePanelItem(SidePanelItemProps{
		Icon:               "lock",
		Title:              "Locked",
		HelpText:           "You cannot edit this page.",
		ScreenReaderPrefix: "Lock status: ",
	}))

	want := `<section class="side-panel-item">` +
		`<h3 class="side-panel-item__title">` +
		`<svg class="icon icon-lock" aria-hidden="true"><use href="#icon-lock"></use></svg>` +
		`<span class="sr-only">Lock status: </span>` +
		`Locked</h3>` +
		`<p class="side-panel-item__help">You cannot edit this page.</p>` +
		`</section>`
	assert.Equal(t, want, got)
}

func TestSidePanelItem_Children(t *testing.T) {
	got := render(t, SidePanelItem(
		SidePanelItemProps{Icon: "lock-open", Title: "Unlocked"},
		SidePanelButton(SidePanelButtonProps{
			Hook:  "lock-action",
			URL:   "/admin/content/page-123/lock",
			Label: "Lock",
		}),
	))

	assert.Contains(t, got, `<a class="button button--small" href="/admin/content/page-123/lock" data-hook="lock-action">Lock</a>`)
	// children render after the help text, inside the section
	assert.True(t, strings.HasSuffix(got, `</a></section>`))
}

func TestSidePanelItem_EscapesText(t *testing.T) {
	got := render(t, SidePanelItem(SidePanelItemProps{
		Icon:     "lock",
		Title:    `<script>alert("x")</script>`,
		HelpText: `a & b`,
	}))

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "a &amp; b")
}

func TestSidePanelButton_SanitizesURL(t *testing.T) {
	got := render(t, SidePanelButton(SidePanelButtonProps{
		Hook:  "lock-action",
		URL:   "javascript:alert(1)",
		Label: "Unlock",
	}))

	assert.NotContains(t, got, "javascript:")
}

func TestSidePanelNote(t *testing.T) {
	got := render(t, SidePanelNote("Page 'About' is locked by you."))

	assert.Equal(t, `<p class="side-panel-item__note">Page &#39;About&#39; is locked by you.</p>`, got)
}
