package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/memcurve/internal/model"
)

func TestRecorderKnownSetsWorkingLevelZero(t *testing.T) {
	r := NewRecorder()
	_, ok := r.WorkingLevel("cat")
	assert.False(t, ok)

	r.MarkKnown("cat")
	l, ok := r.WorkingLevel("cat")
	assert.True(t, ok)
	assert.Equal(t, 0, l)
	assert.Equal(t, []string{"cat"}, r.Known())
	assert.Empty(t, r.Unknown())
}

func TestRecorderUnknownLeavesWorkingLevel(t *testing.T) {
	r := NewRecorder()
	r.MarkUnknown("dog")
	_, ok := r.WorkingLevel("dog")
	assert.False(t, ok)
	assert.Equal(t, []string{"dog"}, r.Unknown())
}

func TestRecorderWrongAfterKnownCountsAsUnknown(t *testing.T) {
	r := NewRecorder()
	r.MarkKnown("cat")
	r.MarkWrongAfterKnown("cat")

	assert.Empty(t, r.Known())
	assert.Equal(t, []string{"cat"}, r.Unknown())
	assert.Len(t, r.Events(), 2)
	assert.Equal(t, 1, r.Len())
}

func TestRecorderLastWriteWins(t *testing.T) {
	r := NewRecorder()
	r.MarkUnknown("cat")
	r.MarkKnown("dog")
	r.MarkKnown("cat")

	assert.Equal(t, []model.SessionOutcome{
		{Word: "dog", Outcome: model.Known},
		{Word: "cat", Outcome: model.Known},
	}, r.Outcomes())
	assert.Equal(t, []string{"dog", "cat"}, r.Known())
	assert.Empty(t, r.Unknown())
}

func TestRecorderAnswered(t *testing.T) {
	r := NewRecorder()
	assert.False(t, r.Answered("cat"))
	r.MarkUnknown("cat")
	assert.True(t, r.Answered("cat"))
}
