// Package paths provides helpers for constructing admin UI URL paths.
package paths

import "fmt"

// site-wide prefix added to all admin routes
const prefix = "/admin"

func LockContent(contentID string) string {
	return fmt.Sprintf("%s/content/%s/lock", prefix, contentID)
}

func UnlockContent(contentID string) string {
	return fmt.Sprintf("%s/content/%s/unlock", prefix, contentID)
}

func LockPanelContent(contentID string) string {
	return fmt.Sprintf("%s/content/%s/lock-panel", prefix, contentID)
}
