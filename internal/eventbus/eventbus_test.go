package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"memberpick/internal/domain"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	var got []string
	b.Subscribe(EventMemberSelected, func(e DomainEvent) {
		got = append(got, "first:"+e.(MemberSelectedEvent).Member.Name)
	})
	b.Subscribe(EventMemberSelected, func(e DomainEvent) {
		got = append(got, "second:"+e.(MemberSelectedEvent).Member.Name)
	})
	b.Subscribe(EventCloseRequested, func(DomainEvent) {
		got = append(got, "close")
	})

	b.Publish(MemberSelectedEvent{Member: domain.Member{ID: 3, Name: "Jane Smith"}})

	assert.Equal(t, []string{"first:Jane Smith", "second:Jane Smith"}, got)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	unsubscribe := b.Subscribe(EventSelectionCleared, func(DomainEvent) { calls++ })

	b.Publish(SelectionClearedEvent{})
	unsubscribe()
	b.Publish(SelectionClearedEvent{})

	assert.Equal(t, 1, calls)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New()
	reached := false
	b.Subscribe(EventCloseRequested, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventCloseRequested, func(DomainEvent) { reached = true })

	assert.NotPanics(t, func() { b.Publish(CloseRequestedEvent{}) })
	assert.True(t, reached)
}
