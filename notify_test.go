package accordeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_ZeroValueIsUsable(t *testing.T) {
	var n Notifier

	// Notify with nothing registered must not panic.
	n.Notify()

	called := false
	n.OnActivated(func() { called = true })
	n.Notify()

	assert.True(t, called)
}

func TestNotifier_ListenersRunInRegistrationOrder(t *testing.T) {
	var n Notifier
	var order []string

	n.OnActivated(func() { order = append(order, "first") })
	n.OnActivated(func() { order = append(order, "second") })
	n.OnActivated(func() { order = append(order, "third") })

	n.Notify()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestNotifier_CancelRemovesListener(t *testing.T) {
	var n Notifier
	count := 0

	cancel := n.OnActivated(func() { count++ })
	n.Notify()
	cancel()
	n.Notify()

	assert.Equal(t, 1, count, "cancelled listener must not fire again")
}

func TestNotifier_CancelTwiceIsHarmless(t *testing.T) {
	var n Notifier
	count := 0

	cancel := n.OnActivated(func() { count++ })
	cancel()
	cancel()
	n.Notify()

	assert.Equal(t, 0, count)
}

func TestNotifier_CancelOnlyAffectsOwnRegistration(t *testing.T) {
	var n Notifier
	var first, second int

	cancelFirst := n.OnActivated(func() { first++ })
	n.OnActivated(func() { second++ })

	cancelFirst()
	n.Notify()

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestNotifier_ListenerMayCancelAnother(t *testing.T) {
	var n Notifier
	count := 0

	var cancelSecond func()
	n.OnActivated(func() { cancelSecond() })
	cancelSecond = n.OnActivated(func() { count++ })

	n.Notify()

	assert.Equal(t, 0, count, "a listener cancelled mid-notify must be skipped")
}
