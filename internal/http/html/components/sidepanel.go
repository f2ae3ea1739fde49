// Package components provides the generic building blocks from which admin
// side panels are assembled.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type (
	// SidePanelItemProps configures the shared layout of a side panel action
	// item.
	SidePanelItemProps struct {
		Icon               string // icon sprite name, e.g. "lock"
		Title              string
		HelpText           string
		ScreenReaderPrefix string // announced before the title by screen readers
	}

	// SidePanelButtonProps configures a side panel action button.
	SidePanelButtonProps struct {
		Hook  string // data-hook attribute for client-side wiring
		URL   string // target URL of the action
		Label string // button text
	}
)

// SidePanelItem renders the shared layout of a side panel action item: an
// icon, a title and help text, followed by any child components.
func SidePanelItem(props SidePanelItemProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="side-panel-item"><h3 class="side-panel-item__title">`); err != nil {
			return err
		}
		if err := Icon(props.Icon).Render(ctx, w); err != nil {
			return err
		}
		if props.ScreenReaderPrefix != "" {
			if _, err := fmt.Fprintf(w, `<span class="sr-only">%s</span>`, templ.EscapeString(props.ScreenReaderPrefix)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `%s</h3>`, templ.EscapeString(props.Title)); err != nil {
			return err
		}
		if props.HelpText != "" {
			if _, err := fmt.Fprintf(w, `<p class="side-panel-item__help">%s</p>`, templ.EscapeString(props.HelpText)); err != nil {
				return err
			}
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// SidePanelButton renders an action button wired up for client-side handling
// via its data-hook attribute.
func SidePanelButton(props SidePanelButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<a class="button button--small" href="%s" data-hook="%s">%s</a>`,
			templ.EscapeString(string(templ.URL(props.URL))),
			templ.EscapeString(props.Hook),
			templ.EscapeString(props.Label),
		)
		return err
	})
}

// SidePanelNote renders a note paragraph beneath a side panel item's help
// text.
func SidePanelNote(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="side-panel-item__note">%s</p>`, templ.EscapeString(text))
		return err
	})
}

// Icon renders a reference to a sprite icon.
func Icon(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name = templ.EscapeString(name)
		_, err := fmt.Fprintf(w, `<svg class="icon icon-%[1]s" aria-hidden="true"><use href="#icon-%[1]s"></use></svg>`, name)
		return err
	})
}
