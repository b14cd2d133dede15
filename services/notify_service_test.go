package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	sender := NewMockSender()

	count := Fanout(sender, []int64{1, 2, 3}, "Yangilik!", nil)
	assert.Equal(t, 3, count)
	assert.Len(t, sender.Messages(), 3)
}

func TestFanoutSkipsFailures(t *testing.T) {
	sender := NewMockSender()
	sender.FailFor(2)

	count := Fanout(sender, []int64{1, 2, 3}, "Yangilik!", nil)
	assert.Equal(t, 2, count)

	// The failing recipient is skipped, the rest still receive the message.
	assert.Len(t, sender.MessagesTo(1), 1)
	assert.Empty(t, sender.MessagesTo(2))
	assert.Len(t, sender.MessagesTo(3), 1)
}

func TestFanoutEmptyRecipients(t *testing.T) {
	sender := NewMockSender()
	assert.Equal(t, 0, Fanout(sender, nil, "Yangilik!", nil))
	assert.Empty(t, sender.Messages())
}
