package models

import (
	"fmt"
	"math"
	"time"
)

// MaxSeats is the largest seat count the webinar table can store.
const MaxSeats = math.MaxInt32

// Webinar is a scheduled event with a seat capacity and a single organizer.
// Seats stays within 1..MaxSeats for the whole lifetime of the value.
type Webinar struct {
	id          string
	organizerID string
	title       string
	startDate   time.Time
	endDate     time.Time
	seats       int
}

type WebinarProps struct {
	ID          string
	OrganizerID string
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Seats       int
}

// WebinarPatch lists the fields Update may change. Nil fields are left as is.
type WebinarPatch struct {
	Seats *int
}

func NewWebinar(props WebinarProps) (*Webinar, error) {
	if props.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidWebinar)
	}
	if props.OrganizerID == "" {
		return nil, fmt.Errorf("%w: organizer id is required", ErrInvalidWebinar)
	}
	if !validSeats(props.Seats) {
		return nil, ErrInvalidSeats
	}

	return &Webinar{
		id:          props.ID,
		organizerID: props.OrganizerID,
		title:       props.Title,
		startDate:   props.StartDate,
		endDate:     props.EndDate,
		seats:       props.Seats,
	}, nil
}

// Update applies the patch in place and returns the webinar.
// On error the webinar is not modified.
func (w *Webinar) Update(patch WebinarPatch) (*Webinar, error) {
	if patch.Seats != nil {
		if !validSeats(*patch.Seats) {
			return w, ErrInvalidSeats
		}
		w.seats = *patch.Seats
	}

	return w, nil
}

func (w *Webinar) ID() string           { return w.id }
func (w *Webinar) OrganizerID() string  { return w.organizerID }
func (w *Webinar) Title() string        { return w.title }
func (w *Webinar) StartDate() time.Time { return w.startDate }
func (w *Webinar) EndDate() time.Time   { return w.endDate }
func (w *Webinar) Seats() int           { return w.seats }

// IsOrganizer reports whether userID may modify the webinar.
func (w *Webinar) IsOrganizer(userID string) bool {
	return w.organizerID == userID
}

func validSeats(seats int) bool {
	return seats > 0 && seats <= MaxSeats
}
