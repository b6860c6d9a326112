package handlers

import (
	"errors"
	"net/http"

	"servana/services/booking"
)

// errorStatus maps service-level failure kinds to HTTP statuses. Anything not
// in the taxonomy is an internal storage failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrSlotConflict),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotDeletable),
		errors.Is(err, booking.ErrReferentialGuard):
		return http.StatusConflict
	case errors.Is(err, booking.ErrServicerUnavailable):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func contextID(id any, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	s, sok := id.(string)
	return s, sok && s != ""
}
