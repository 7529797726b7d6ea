package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClock_Now(t *testing.T) {
	zurich, err := time.LoadLocation("Europe/Zurich")
	require.NoError(t, err)

	now := NewSystemClock(zurich).Now()

	assert.Equal(t, zurich, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestSystemClock_DefaultsToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewSystemClock(nil).Now().Location())
}
