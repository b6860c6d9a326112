package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"servana/services/booking"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{booking.ErrValidation, http.StatusBadRequest},
		{booking.ErrUnauthorized, http.StatusForbidden},
		{booking.ErrNotFound, http.StatusNotFound},
		{booking.ErrSlotConflict, http.StatusConflict},
		{booking.ErrInvalidTransition, http.StatusConflict},
		{booking.ErrNotDeletable, http.StatusConflict},
		{booking.ErrReferentialGuard, http.StatusConflict},
		{booking.ErrServicerUnavailable, http.StatusUnprocessableEntity},
		{errors.New("mongo timed out"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := errorStatus(tc.err); got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}

	// Wrapped sentinels map the same as bare ones.
	wrapped := fmt.Errorf("slot 2/3/2026 09:00 AM: %w", booking.ErrSlotConflict)
	if got := errorStatus(wrapped); got != http.StatusConflict {
		t.Fatalf("wrapped conflict: expected %d, got %d", http.StatusConflict, got)
	}
}
