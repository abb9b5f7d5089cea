package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rheumassoc/api/internal/models"
)

func TestEventsFilterDefaultsToUpcoming(t *testing.T) {
	now := time.Now()
	filter := eventsFilter(contextWithQuery(""), now)

	require.NotNil(t, filter.NewsType)
	assert.Equal(t, string(models.NewsTypeEvent), *filter.NewsType)
	assert.True(t, filter.PublishedOnly)
	require.NotNil(t, filter.UpcomingFrom)
	assert.Equal(t, now, *filter.UpcomingFrom)
	assert.True(t, filter.OrderByEvent)
}

func TestEventsFilterIncludesPastEvents(t *testing.T) {
	filter := eventsFilter(contextWithQuery("upcoming_only=false"), time.Now())

	assert.Nil(t, filter.UpcomingFrom)
	assert.False(t, filter.OrderByEvent)
	assert.True(t, filter.PublishedOnly)
}
