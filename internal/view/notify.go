package view

import (
	"sync"
	"time"
)

// Severity selects a notification slot.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 6 * time.Second

// Notification is one visible message.
type Notification struct {
	Severity Severity
	Message  string
	Posted   time.Time
}

// Notifier holds at most one notification per severity. Posting replaces
// the slot; entries expire lazily when read.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	slots map[Severity]Notification
}

// NotifierOption customises a Notifier.
type NotifierOption func(*Notifier)

// WithClock injects the time source used for expiry.
func WithClock(now func() time.Time) NotifierOption {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

// WithTTL overrides the display duration.
func WithTTL(d time.Duration) NotifierOption {
	return func(n *Notifier) {
		if d > 0 {
			n.ttl = d
		}
	}
}

// NewNotifier returns an empty notifier with the default TTL.
func NewNotifier(opts ...NotifierOption) *Notifier {
	n := &Notifier{
		ttl:   DefaultTTL,
		now:   time.Now,
		slots: make(map[Severity]Notification, 2),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Success posts a success notice.
func (n *Notifier) Success(msg string) { n.Post(SeveritySuccess, msg) }

// Error posts an error notice.
func (n *Notifier) Error(msg string) { n.Post(SeverityError, msg) }

// Post shows msg in the severity's slot. An empty message clears it.
func (n *Notifier) Post(sev Severity, msg string) {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if msg == "" {
		delete(n.slots, sev)
		return
	}
	n.slots[sev] = Notification{Severity: sev, Message: msg, Posted: n.now()}
}

// Dismiss closes the slot early.
func (n *Notifier) Dismiss(sev Severity) {
	n.Post(sev, "")
}

// Active returns the unexpired notifications, success first.
func (n *Notifier) Active() []Notification {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	var out []Notification
	for _, sev := range []Severity{SeveritySuccess, SeverityError} {
		note, ok := n.slots[sev]
		if !ok {
			continue
		}
		if now.Sub(note.Posted) >= n.ttl {
			delete(n.slots, sev)
			continue
		}
		out = append(out, note)
	}
	return out
}

// Current returns the message in a slot, or "" when empty or expired.
func (n *Notifier) Current(sev Severity) string {
	for _, note := range n.Active() {
		if note.Severity == sev {
			return note.Message
		}
	}
	return ""
}
