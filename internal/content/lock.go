package content

import (
	"slices"
	"time"

	"github.com/chiselcms/chisel/internal/i18n"
	"github.com/chiselcms/chisel/internal/resource"
	"golang.org/x/text/message"
)

// TimestampFormat renders lock timestamps in messages, e.g. "04 Mar 2026
// 15:30".
const TimestampFormat = "02 Jan 2006 15:04"

// Lock holds information about a lock on a content object. A nil Lock means
// the object is unlocked.
type Lock interface {
	// ForUser reports whether the lock blocks the given user from editing.
	ForUser(user resource.ID) bool
	// Message describes the lock to the given user, for display alongside the
	// lock status. An empty message means there is nothing to report.
	Message(p *message.Printer, target Target, user resource.ID) string
}

// BasicLock is enabled when a user locks the object from the editor. The
// object remains editable by the lock holder unless Global is set.
type BasicLock struct {
	LockedBy     resource.ID
	LockedByName string
	// LockedAt is when the lock was taken out. Zero when unknown, e.g. the
	// object was locked by a script or an old version of the system.
	LockedAt time.Time
	// Global makes the lock apply to the holder too, mirroring the site-wide
	// global edit lock setting.
	Global bool
}

func (l BasicLock) ForUser(user resource.ID) bool {
	if l.Global {
		return true
	}
	return user != l.LockedBy
}

func (l BasicLock) Message(p *message.Printer, target Target, user resource.ID) string {
	var (
		title = target.Title
		when  = l.LockedAt.Format(TimestampFormat)
	)
	if user == l.LockedBy {
		if !l.LockedAt.IsZero() {
			if target.Page {
				return p.Sprintf("Page '%s' was locked by you on %s.", title, when)
			}
			return i18n.CapFirst(p.Sprintf("%s '%s' was locked by you on %s.", target.noun(), title, when))
		}
		if target.Page {
			return p.Sprintf("Page '%s' is locked by you.", title)
		}
		return i18n.CapFirst(p.Sprintf("%s '%s' is locked by you.", target.noun(), title))
	}
	if l.LockedByName != "" && !l.LockedAt.IsZero() {
		if target.Page {
			return p.Sprintf("Page '%s' was locked by %s on %s.", title, l.LockedByName, when)
		}
		return i18n.CapFirst(p.Sprintf("%s '%s' was locked by %s on %s.", target.noun(), title, l.LockedByName, when))
	}
	if target.Page {
		return p.Sprintf("Page '%s' is locked.", title)
	}
	return i18n.CapFirst(p.Sprintf("%s '%s' is locked.", target.noun(), title))
}

// WorkflowLock blocks edits while a page awaits moderation; only the current
// task's reviewers may edit. Applies to pages only.
type WorkflowLock struct {
	TaskName     string
	WorkflowName string
	// TaskCount is the number of tasks in the workflow; single-task workflows
	// get a simpler message.
	TaskCount int
	// Reviewers for the current task.
	Reviewers []resource.ID
}

func (l WorkflowLock) ForUser(user resource.ID) bool {
	return !slices.Contains(l.Reviewers, user)
}

func (l WorkflowLock) Message(p *message.Printer, target Target, user resource.ID) string {
	// reviewers see no lock message; the lock does not apply to them
	if !l.ForUser(user) {
		return ""
	}
	var info string
	if l.TaskCount == 1 {
		info = p.Sprintf("This page is currently awaiting moderation.")
	} else {
		info = p.Sprintf("This page is awaiting '%s' in the '%s' workflow.", l.TaskName, l.WorkflowName)
	}
	return info + " " + p.Sprintf("Only reviewers for this task can edit the page.")
}

// ScheduledLock blocks all edits while a revision is scheduled for
// publication, so that the version going live stays unambiguous. Nobody can
// edit, regardless of permissions.
type ScheduledLock struct {
	GoLiveAt time.Time
}

func (ScheduledLock) ForUser(resource.ID) bool { return true }

func (l ScheduledLock) Message(p *message.Printer, target Target, user resource.ID) string {
	when := l.GoLiveAt.Format(TimestampFormat)
	if target.Page {
		return p.Sprintf("Page '%s' is locked and has been scheduled to go live at %s", target.Title, when)
	}
	return i18n.CapFirst(p.Sprintf("%s '%s' is locked and has been scheduled to go live at %s", target.noun(), target.Title, when))
}
