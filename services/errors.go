package services

import "errors"

var (
	// ErrNotFound covers a genuinely missing entity and an ownership
	// mismatch alike; callers must not be able to tell them apart.
	ErrNotFound = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAdmin           = errors.New("you do not have admin privileges")

	// ErrIncompleteRequest aborts the booking flow before anything is
	// written; the caller redirects home.
	ErrIncompleteRequest = errors.New("incomplete booking request")

	ErrBookingWrite  = errors.New("failed to create booking")
	ErrReviewWrite   = errors.New("failed to create review")
	ErrWishlistWrite = errors.New("failed to update wishlist")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
