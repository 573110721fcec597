package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDesktopNotifier() (*DesktopNotifier, *deliveryLog) {
	log := &deliveryLog{}
	notifier := &DesktopNotifier{
		timers:  make(map[int64]*time.Timer),
		deliver: log.record,
	}
	return notifier, log
}

type deliveryLog struct {
	mu        sync.Mutex
	delivered []string
}

func (l *deliveryLog) record(title, body string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delivered = append(l.delivered, title)
	return nil
}

func (l *deliveryLog) titles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.delivered...)
}

func TestDesktopNotifier_ScheduleAndCancel(t *testing.T) {
	notifier, _ := newTestDesktopNotifier()
	defer notifier.CancelAll()

	far := time.Now().Add(time.Hour)
	require.NoError(t, notifier.ScheduleOneShot(1, far, "One", ""))
	require.NoError(t, notifier.ScheduleOneShot(2, far, "Two", ""))

	assert.Equal(t, []int64{1, 2}, notifier.Pending())

	require.NoError(t, notifier.Cancel(1))
	assert.Equal(t, []int64{2}, notifier.Pending())
}

func TestDesktopNotifier_CancelUnknownID(t *testing.T) {
	notifier, _ := newTestDesktopNotifier()

	assert.NoError(t, notifier.Cancel(42))
	assert.Empty(t, notifier.Pending())
}

func TestDesktopNotifier_RescheduleReplacesTrigger(t *testing.T) {
	notifier, _ := newTestDesktopNotifier()
	defer notifier.CancelAll()

	require.NoError(t, notifier.ScheduleOneShot(1, time.Now().Add(time.Hour), "First", ""))
	require.NoError(t, notifier.ScheduleOneShot(1, time.Now().Add(2*time.Hour), "Second", ""))

	assert.Equal(t, []int64{1}, notifier.Pending())
}

func TestDesktopNotifier_CancelAll(t *testing.T) {
	notifier, _ := newTestDesktopNotifier()

	far := time.Now().Add(time.Hour)
	require.NoError(t, notifier.ScheduleOneShot(1, far, "One", ""))
	require.NoError(t, notifier.ScheduleOneShot(2, far, "Two", ""))

	require.NoError(t, notifier.CancelAll())
	assert.Empty(t, notifier.Pending())
}

func TestDesktopNotifier_DeliversAtTriggerTime(t *testing.T) {
	notifier, log := newTestDesktopNotifier()

	require.NoError(t, notifier.ScheduleOneShot(1, time.Now().Add(10*time.Millisecond), "Essay", "Due soon"))

	assert.Eventually(t, func() bool {
		titles := log.titles()
		return len(titles) == 1 && titles[0] == "Essay"
	}, time.Second, 10*time.Millisecond)

	// The fired trigger no longer counts as pending
	assert.Eventually(t, func() bool {
		return len(notifier.Pending()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNopNotifier(t *testing.T) {
	notifier := NewNopNotifier()

	assert.NoError(t, notifier.ScheduleOneShot(1, time.Now().Add(time.Hour), "Essay", ""))
	assert.NoError(t, notifier.Cancel(1))
	assert.NoError(t, notifier.CancelAll())
}
