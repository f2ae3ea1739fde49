package content

import (
	"context"

	"github.com/chiselcms/chisel/internal"
	"github.com/chiselcms/chisel/internal/resource"
)

// unexported key type prevents collisions
type viewerCtxKeyType string

const viewerCtxKey viewerCtxKeyType = "viewer"

// AddViewerToContext adds the viewing user's ID to the context. The host
// application's authentication middleware is expected to call this before
// requests reach the lock panel handler.
func AddViewerToContext(ctx context.Context, viewer resource.ID) context.Context {
	return context.WithValue(ctx, viewerCtxKey, viewer)
}

// ViewerFromContext retrieves the viewing user's ID from the context.
func ViewerFromContext(ctx context.Context) (resource.ID, error) {
	viewer, ok := ctx.Value(viewerCtxKey).(resource.ID)
	if !ok {
		return resource.EmptyID, internal.ErrNoViewer
	}
	return viewer, nil
}
