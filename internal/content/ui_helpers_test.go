package content

import (
	"context"
	"strings"
	"testing"

	"github.com/chiselcms/chisel/internal/i18n"
	"github.com/chiselcms/chisel/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPanel(t *testing.T) {
	var (
		page    = Target{ID: resource.ID{Kind: resource.PageKind, ID: "123"}, Title: "About", Page: true}
		snippet = Target{ID: resource.ID{Kind: resource.SnippetKind, ID: "123"}, Title: "Spring sale", ModelName: "Promotion"}
		p       = i18n.Printer(i18n.DefaultLanguage)
	)
	unlock := &PanelAction{Label: "Unlock", URL: "/admin/content/page-123/unlock"}
	unlockSnippet := &PanelAction{Label: "Unlock", URL: "/admin/content/snippet-123/unlock"}

	tests := []struct {
		name          string
		target        Target
		locked        bool
		lockedForUser bool
		canUnlock     bool
		canLock       bool
		want          PanelItem
	}{
		{
			"locked, editable by viewer, can unlock",
			page, true, false, true, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You can edit this page, but others may not. Unlock it to allow others to edit.",
				Action:   unlock,
			},
		},
		{
			"locked, editable by viewer, cannot unlock",
			page, true, false, false, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You can edit this page, but others may not.",
			},
		},
		{
			"locked for viewer, can unlock",
			page, true, true, true, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You cannot edit this page. Unlock it to edit.",
				Action:   unlock,
			},
		},
		{
			"locked for viewer, cannot unlock",
			page, true, true, false, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You cannot edit this page.",
			},
		},
		{
			"unlocked, can lock",
			page, false, false, false, true,
			PanelItem{
				Title:    "Unlocked",
				Icon:     "lock-open",
				HelpText: "Anyone can edit this page. Lock it to prevent others from editing.",
				Action:   &PanelAction{Label: "Lock", URL: "/admin/content/page-123/lock"},
			},
		},
		{
			"unlocked, cannot lock",
			page, false, false, false, false,
			PanelItem{
				Title:    "Unlocked",
				Icon:     "lock-open",
				HelpText: "Anyone can edit this page.",
			},
		},
		{
			"snippet locked, editable by viewer, can unlock",
			snippet, true, false, true, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You can edit this promotion, but others may not. Unlock it to allow others to edit.",
				Action:   unlockSnippet,
			},
		},
		{
			"snippet locked, editable by viewer, cannot unlock",
			snippet, true, false, false, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You can edit this promotion, but others may not.",
			},
		},
		{
			"snippet locked for viewer, can unlock",
			snippet, true, true, true, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You cannot edit this promotion. Unlock it to edit.",
				Action:   unlockSnippet,
			},
		},
		{
			"snippet locked for viewer, cannot unlock",
			snippet, true, true, false, false,
			PanelItem{
				Title:    "Locked",
				Icon:     "lock",
				HelpText: "You cannot edit this promotion.",
			},
		},
		{
			"snippet unlocked, can lock",
			snippet, false, false, false, true,
			PanelItem{
				Title:    "Unlocked",
				Icon:     "lock-open",
				HelpText: "Anyone can edit this promotion. Lock it to prevent others from editing.",
				Action:   &PanelAction{Label: "Lock", URL: "/admin/content/snippet-123/lock"},
			},
		},
		{
			"snippet unlocked, cannot lock",
			snippet, false, false, false, false,
			PanelItem{
				Title:    "Unlocked",
				Icon:     "lock-open",
				HelpText: "Anyone can edit this promotion.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LockPanel(p, tt.target, tt.locked, tt.lockedForUser, tt.canUnlock, tt.canLock)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLockPanelFragment(t *testing.T) {
	p := i18n.Printer(i18n.DefaultLanguage)
	item := PanelItem{
		Title:    "Locked",
		Icon:     "lock",
		HelpText: "You can edit this page, but others may not. Unlock it to allow others to edit.",
		Action:   &PanelAction{Label: "Unlock", URL: "/admin/content/page-123/unlock"},
	}

	var sb strings.Builder
	require.NoError(t, lockPanelFragment(p, item, "Page 'About' is locked by you.").Render(context.Background(), &sb))
	got := sb.String()

	assert.Contains(t, got, `<span class="sr-only">Lock status: </span>`)
	assert.Contains(t, got, `<svg class="icon icon-lock"`)
	assert.Contains(t, got, `<p class="side-panel-item__note">Page &#39;About&#39; is locked by you.</p>`)
	assert.Contains(t, got, `<a class="button button--small" href="/admin/content/page-123/unlock" data-hook="lock-action">Unlock</a>`)
}

// Rendering the fragment twice with identical inputs produces byte-identical
// output.
func TestLockPanelFragment_Idempotent(t *testing.T) {
	p := i18n.Printer(i18n.DefaultLanguage)
	target := Target{ID: resource.ID{Kind: resource.PageKind, ID: "123"}, Title: "About", Page: true}

	render := func() string {
		item := LockPanel(p, target, true, false, true, false)
		var sb strings.Builder
		require.NoError(t, lockPanelFragment(p, item, "").Render(context.Background(), &sb))
		return sb.String()
	}
	assert.Equal(t, render(), render())
}
