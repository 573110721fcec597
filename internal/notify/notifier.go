package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// Notifier is the contract toward the system notification store: a
// one-shot trigger registry keyed by task id.
type Notifier interface {
	ScheduleOneShot(id int64, triggerTime time.Time, title, body string) error
	Cancel(id int64) error
	CancelAll() error
}

// DesktopNotifier delivers desktop notifications at their trigger time.
// Each scheduled id owns one pending timer; scheduling the same id
// again replaces the previous trigger.
type DesktopNotifier struct {
	mu      sync.Mutex
	timers  map[int64]*time.Timer
	deliver func(title, body string) error
}

// NewDesktopNotifier creates a notifier that delivers via the desktop
// notification service.
func NewDesktopNotifier(appName string) *DesktopNotifier {
	beeep.AppName = appName
	return &DesktopNotifier{
		timers: make(map[int64]*time.Timer),
		deliver: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
	}
}

// ScheduleOneShot registers a one-shot trigger under id, replacing any
// existing trigger for the same id.
func (n *DesktopNotifier) ScheduleOneShot(id int64, triggerTime time.Time, title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
	}

	n.timers[id] = time.AfterFunc(time.Until(triggerTime), func() {
		n.mu.Lock()
		delete(n.timers, id)
		n.mu.Unlock()

		// Delivery failures are invisible to the scheduler by then;
		// there is nobody left to report them to.
		_ = n.deliver(title, body)
	})
	return nil
}

// Cancel removes the pending trigger for id. Cancelling an unknown id
// is a no-op.
func (n *DesktopNotifier) Cancel(id int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
	return nil
}

// CancelAll removes every pending trigger.
func (n *DesktopNotifier) CancelAll() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
	return nil
}

// Pending returns the ids with a live trigger, in ascending order.
func (n *DesktopNotifier) Pending() []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids := make([]int64, 0, len(n.timers))
	for id := range n.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NopNotifier discards every call. It stands in for the real service
// when notification permission is unavailable, degrading reminders to
// silent no-ops instead of errors.
type NopNotifier struct{}

// NewNopNotifier creates a notifier that does nothing.
func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

func (*NopNotifier) ScheduleOneShot(id int64, triggerTime time.Time, title, body string) error {
	return nil
}

func (*NopNotifier) Cancel(id int64) error {
	return nil
}

func (*NopNotifier) CancelAll() error {
	return nil
}
