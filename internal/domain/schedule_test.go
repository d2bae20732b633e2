package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmdxx5/CarWashBackend/pkg/types"
)

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("sunday")
	require.NoError(t, err)
	assert.Equal(t, Sunday, day)

	day, err = ParseWeekday("SATURDAY")
	require.NoError(t, err)
	assert.Equal(t, Saturday, day)

	_, err = ParseWeekday("Funday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = ParseWeekday("")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Friday, WeekdayOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseHours(t *testing.T) {
	hours, err := ParseHours([]string{"10:00", "08:00", "10:00", "09:30"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "08:00", "09:30"}, hours)

	hours, err = ParseHours(nil)
	require.NoError(t, err)
	assert.Empty(t, hours)

	for _, bad := range [][]string{{" "}, {"8:00"}, {"08:00", "25:00"}, {"08:00 "}} {
		_, err := ParseHours(bad)
		assert.ErrorIs(t, err, ErrInvalidHours, "%v", bad)
	}
}

func TestOverrideLookup(t *testing.T) {
	none := NoOverride()
	assert.False(t, none.Found())
	assert.False(t, none.Replaces())
	assert.Nil(t, none.Override())

	empty := FoundOverride(&DateOverride{Date: "2024-01-07", Hours: []types.TimeString{}})
	assert.True(t, empty.Found())
	assert.False(t, empty.Replaces())

	full := FoundOverride(&DateOverride{Date: "2024-01-07", Hours: []types.TimeString{"12:00"}})
	assert.True(t, full.Replaces())
}
