package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_Notify(t *testing.T) {
	feed := NewFeed(10)

	feed.Notify("Запись подтверждена", "Haircut & Styling, 2025-04-15 в 10:00", SeveritySuccess)

	recent := feed.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "Запись подтверждена", recent[0].Title)
	assert.Equal(t, SeveritySuccess, recent[0].Severity)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestFeed_RecentOrder(t *testing.T) {
	feed := NewFeed(10)

	feed.Notify("first", "", SeveritySuccess)
	feed.Notify("second", "", SeverityDestructive)
	feed.Notify("third", "", SeverityError)

	recent := feed.Recent(0)
	require.Len(t, recent, 3)

	// Новые уведомления первыми
	assert.Equal(t, "third", recent[0].Title)
	assert.Equal(t, "second", recent[1].Title)
	assert.Equal(t, "first", recent[2].Title)
}

func TestFeed_RecentLimit(t *testing.T) {
	feed := NewFeed(10)

	feed.Notify("first", "", SeveritySuccess)
	feed.Notify("second", "", SeveritySuccess)
	feed.Notify("third", "", SeveritySuccess)

	recent := feed.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Title)
	assert.Equal(t, "second", recent[1].Title)

	// limit больше размера ленты возвращает все
	assert.Len(t, feed.Recent(100), 3)
}

func TestFeed_CapacityEviction(t *testing.T) {
	feed := NewFeed(2)

	feed.Notify("first", "", SeveritySuccess)
	feed.Notify("second", "", SeveritySuccess)
	feed.Notify("third", "", SeveritySuccess)

	recent := feed.Recent(0)
	require.Len(t, recent, 2)

	// Старейшее уведомление вытеснено
	assert.Equal(t, "third", recent[0].Title)
	assert.Equal(t, "second", recent[1].Title)
}

func TestFeed_DefaultCapacity(t *testing.T) {
	feed := NewFeed(0)

	for i := 0; i < DefaultCapacity+5; i++ {
		feed.Notify("note", "", SeveritySuccess)
	}

	assert.Len(t, feed.Recent(0), DefaultCapacity)
}

func TestFeed_Timestamps(t *testing.T) {
	feed := NewFeed(10)
	fixed := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	feed.now = func() time.Time { return fixed }

	feed.Notify("note", "", SeveritySuccess)

	recent := feed.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, fixed, recent[0].CreatedAt)
}
