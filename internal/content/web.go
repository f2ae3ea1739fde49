package content

import (
	"context"
	"errors"
	"net/http"

	"github.com/chiselcms/chisel/internal"
	"github.com/chiselcms/chisel/internal/http/decode"
	"github.com/chiselcms/chisel/internal/http/html"
	"github.com/chiselcms/chisel/internal/i18n"
	"github.com/chiselcms/chisel/internal/resource"
	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
)

type (
	webHandlers struct {
		logr.Logger

		client Client
	}

	// Client provides the web handlers with access to the host's content
	// store and its permission checks. Permission evaluation stays with the
	// host; the flags arrive here ready-made.
	Client interface {
		// GetTarget returns the content object and its lock, which is nil
		// when the object is unlocked.
		GetTarget(ctx context.Context, contentID resource.ID) (Target, Lock, error)
		GetPermissions(ctx context.Context, contentID, viewer resource.ID) (Permissions, error)
	}

	// Permissions are the viewer's lock permission flags, computed upstream
	// by the host application.
	Permissions struct {
		CanLock   bool
		CanUnlock bool
	}
)

func (h *webHandlers) addHandlers(r *mux.Router) {
	r.HandleFunc("/admin/content/{content_id}/lock-panel", h.lockPanel).Methods("GET")
}

// lockPanel renders the lock status side panel fragment. The host's
// client-side code re-requests the fragment whenever a lock or unlock call
// completes.
func (h *webHandlers) lockPanel(w http.ResponseWriter, r *http.Request) {
	contentID, err := decode.ID("content_id", r)
	if err != nil {
		html.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	viewer, err := ViewerFromContext(r.Context())
	if err != nil {
		html.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	target, lock, err := h.client.GetTarget(r.Context(), contentID)
	if err != nil {
		h.Error(err, "retrieving content", "content_id", contentID)
		if errors.Is(err, internal.ErrResourceNotFound) {
			html.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		html.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	perms, err := h.client.GetPermissions(r.Context(), contentID, viewer)
	if err != nil {
		h.Error(err, "retrieving permissions", "content_id", contentID)
		html.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	p := i18n.Printer(i18n.Match(r.Header.Get("Accept-Language")))
	var (
		lockedForUser bool
		note          string
	)
	if lock != nil {
		lockedForUser = lock.ForUser(viewer)
		note = lock.Message(p, target, viewer)
	}
	item := LockPanel(p, target, lock != nil, lockedForUser, perms.CanUnlock, perms.CanLock)
	html.Render(lockPanelFragment(p, item, note), w, r)
}
