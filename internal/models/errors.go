package models

import "errors"

var (
	ErrWebinarNotFound = errors.New("webinar not found")
	ErrNotOrganizer    = errors.New("user is not the organizer of the webinar")
	ErrInvalidSeats    = errors.New("seats must be a positive integer")
	ErrInvalidWebinar  = errors.New("invalid webinar")
)
