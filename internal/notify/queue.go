// Package notify holds transient status and error messages shown in the
// info line. Messages expire after a fixed time-to-live.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 4 * time.Second

type Kind int

const (
	KindMessage Kind = iota
	KindError
)

// Notification is a single message. Err is set for KindError.
type Notification struct {
	Kind      Kind
	Err       error
	Text      string
	CreatedAt time.Time
}

// IsError reports whether n carries an error.
func (n Notification) IsError() bool { return n.Kind == KindError }

// String returns the text to display.
func (n Notification) String() string {
	if n.Kind == KindError && n.Err != nil {
		return n.Err.Error()
	}
	return n.Text
}

// Queue is safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

// NewQueue returns an empty queue stamping notifications with time.Now.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

func (q *Queue) clock() time.Time {
	if q.now == nil {
		return time.Now()
	}
	return q.now()
}

// Push appends n, stamping CreatedAt when it is zero.
func (q *Queue) Push(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = q.clock()
	}
	q.items = append(q.items, n)
}

// Error pushes an error notification. Nil errors are ignored.
func (q *Queue) Error(err error) {
	if err == nil {
		return
	}
	q.Push(Notification{Kind: KindError, Err: err})
}

// Message pushes an informational notification.
func (q *Queue) Message(text string) {
	q.Push(Notification{Kind: KindMessage, Text: text})
}

// Purge drops every notification whose age at now has reached ttl and
// returns how many were removed.
func (q *Queue) Purge(now time.Time, ttl time.Duration) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	for _, n := range q.items {
		if now.Sub(n.CreatedAt) < ttl {
			kept = append(kept, n)
		}
	}
	removed := len(q.items) - len(kept)
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Notification{}
	}
	q.items = kept
	return removed
}

// Latest returns the most recently pushed notification still retained.
func (q *Queue) Latest() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[len(q.items)-1], true
}

// Snapshot returns a copy of all retained notifications, oldest first.
func (q *Queue) Snapshot() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Notification(nil), q.items...)
}

// Len returns the number of retained notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
