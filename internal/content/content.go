// Package content models the editable content objects surfaced in the admin
// UI - pages and snippets - and renders their lock status side panel.
package content

import (
	"strings"

	"github.com/chiselcms/chisel/internal/resource"
)

// Target is the content object being edited. It is assembled per render pass
// by the host application; nothing here is persisted.
type Target struct {
	ID    resource.ID
	Title string
	// Page indicates the target is a page rather than a registered model.
	Page bool
	// ModelName is the human-readable name of the target's model, e.g. "Blog
	// post". Unused for pages.
	ModelName string
}

// noun is the word used to refer to the target in help text: "page" for
// pages, otherwise the lowercased model name.
func (t Target) noun() string {
	if t.Page {
		return "page"
	}
	return strings.ToLower(t.ModelName)
}
