package content

import (
	"github.com/a-h/templ"
	"github.com/chiselcms/chisel/internal/http/html/components"
	"github.com/chiselcms/chisel/internal/http/html/paths"
	"golang.org/x/text/message"
)

type (
	// PanelItem is everything the lock status side panel shows for a content
	// object: a title, an icon, contextual help text for the current viewer,
	// and at most one action button.
	PanelItem struct {
		Title    string // Locked or Unlocked
		Icon     string // icon sprite name
		HelpText string // help text for the current viewer
		Action   *PanelAction
	}

	// PanelAction is the lock or unlock button offered to the viewer.
	PanelAction struct {
		Label string // button text
		URL   string // form URL
	}
)

// LockPanel helps the UI determine what the lock status side panel shows for
// the given target: which title and icon, which help text, and whether to
// offer the viewer a lock or an unlock button.
//
// It is a pure function: rendering the result is free of side effects and
// identical inputs produce identical output.
func LockPanel(p *message.Printer, target Target, locked, lockedForUser, canUnlock, canLock bool) PanelItem {
	noun := target.noun()
	var item PanelItem

	if locked {
		item.Title = p.Sprintf("Locked")
		item.Icon = "lock"
		if lockedForUser {
			if canUnlock {
				item.HelpText = p.Sprintf("You cannot edit this %s. Unlock it to edit.", noun)
			} else {
				item.HelpText = p.Sprintf("You cannot edit this %s.", noun)
			}
		} else {
			if canUnlock {
				item.HelpText = p.Sprintf("You can edit this %s, but others may not. Unlock it to allow others to edit.", noun)
			} else {
				item.HelpText = p.Sprintf("You can edit this %s, but others may not.", noun)
			}
		}
		// A viewer needs the unlock permission to be offered the button
		if canUnlock {
			item.Action = &PanelAction{
				Label: p.Sprintf("Unlock"),
				URL:   paths.UnlockContent(target.ID.String()),
			}
		}
		return item
	}

	item.Title = p.Sprintf("Unlocked")
	item.Icon = "lock-open"
	if canLock {
		item.HelpText = p.Sprintf("Anyone can edit this %s. Lock it to prevent others from editing.", noun)
		item.Action = &PanelAction{
			Label: p.Sprintf("Lock"),
			URL:   paths.LockContent(target.ID.String()),
		}
	} else {
		item.HelpText = p.Sprintf("Anyone can edit this %s.", noun)
	}
	return item
}

// lockPanelFragment composes a panel item into the generic side panel
// contracts, producing the markup fragment handed back to the host admin UI.
// The note, when present, describes who holds the lock.
func lockPanelFragment(p *message.Printer, item PanelItem, note string) templ.Component {
	var children []templ.Component
	if note != "" {
		children = append(children, components.SidePanelNote(note))
	}
	if item.Action != nil {
		children = append(children, components.SidePanelButton(components.SidePanelButtonProps{
			Hook:  "lock-action",
			URL:   item.Action.URL,
			Label: item.Action.Label,
		}))
	}
	return components.SidePanelItem(components.SidePanelItemProps{
		Icon:               item.Icon,
		Title:              item.Title,
		HelpText:           item.HelpText,
		ScreenReaderPrefix: p.Sprintf("Lock status: "),
	}, children...)
}
