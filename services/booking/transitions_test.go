package booking

import (
	"testing"

	"cleanly/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.BookingPending, models.BookingAccepted, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingAccepted, models.BookingCompleted, true},
		{models.BookingAccepted, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingCompleted, models.BookingPending, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCancelled, models.BookingAccepted, false},
		{models.BookingCancelled, models.BookingPending, false},
		{models.BookingAccepted, models.BookingPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.ok, CanTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(models.BookingPending))
	assert.True(t, IsValidStatus(models.BookingAccepted))
	assert.True(t, IsValidStatus(models.BookingCompleted))
	assert.True(t, IsValidStatus(models.BookingCancelled))
	assert.False(t, IsValidStatus("Shipped"))
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus(""))
}
