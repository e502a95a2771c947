package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticeQueueShowsOneAtATime(t *testing.T) {
	nb := NewNoticeBox()
	assert.False(t, nb.Active())

	nb.Push("first")
	nb.Push("second")
	assert.True(t, nb.Active())

	nb.Dismiss()
	assert.True(t, nb.Active(), "next queued notice takes over")
	nb.Dismiss()
	assert.False(t, nb.Active())

	// Dismissing an empty queue is harmless.
	nb.Dismiss()
	assert.False(t, nb.Active())
}
