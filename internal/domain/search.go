package domain

import (
	"context"
	"time"
)

// SessionOutcome classifies one session against a nearest-session query.
// A session whose start time does not parse is skipped, not failed; giving
// that case its own name keeps it distinguishable from a plain mismatch.
type SessionOutcome int

const (
	SessionQualifies SessionOutcome = iota
	SessionDifferentMovie
	SessionSoldOut
	SessionUnparseableTime
	SessionNotUpcoming
)

func (o SessionOutcome) String() string {
	switch o {
	case SessionQualifies:
		return "qualifies"
	case SessionDifferentMovie:
		return "different movie"
	case SessionSoldOut:
		return "sold out"
	case SessionUnparseableTime:
		return "unparseable start time"
	case SessionNotUpcoming:
		return "not upcoming"
	default:
		return "unknown"
	}
}

// QualifySession decides whether a session can answer a nearest-session
// query for the given movie: same movie, at least one free seat, a start
// time that parses and is strictly later than now. On a qualifying session
// the parsed start time is returned as well.
func QualifySession(s *Session, movie string, now time.Time) (SessionOutcome, time.Time) {
	if s.Movie != movie {
		return SessionDifferentMovie, time.Time{}
	}

	if !s.Seats.HasFreeSeat() {
		return SessionSoldOut, time.Time{}
	}

	startsAt, err := s.StartsAt()
	if err != nil {
		return SessionUnparseableTime, time.Time{}
	}

	if !startsAt.After(now) {
		return SessionNotUpcoming, time.Time{}
	}

	return SessionQualifies, startsAt
}

// NearestSession identifies the winning session of a search together with
// its core fields.
type NearestSession struct {
	Theatre         string
	HallNumber      int
	SessionIndex    int
	Movie           string
	StartTime       string
	DurationMinutes int
	StartsAt        time.Time
}

// SessionFinder answers nearest-session queries with a full scan over every
// persisted theatre. No index is maintained: the query is interactive and
// rare, and theatres are few, so the O(n) scan is intentional.
type SessionFinder struct {
	registry TheatreRegistry
}

func NewSessionFinder(registry TheatreRegistry) *SessionFinder {
	return &SessionFinder{registry: registry}
}

// NearestSession returns the future session of the movie with the earliest
// start time that still has a free seat, or ErrNoUpcomingSessions when no
// session qualifies. Ties keep the first session encountered, scanning in
// registry listing order, then hall order, then session order.
func (f *SessionFinder) NearestSession(ctx context.Context, movie string, now time.Time) (*NearestSession, error) {
	names, err := f.registry.Names(ctx)
	if err != nil {
		return nil, err
	}

	var nearest *NearestSession

	for _, name := range names {
		theatre, err := f.registry.Load(ctx, name)
		if err != nil {
			return nil, err
		}

		for i := range theatre.Halls {
			hall := &theatre.Halls[i]

			for j := range hall.Sessions {
				session := &hall.Sessions[j]

				outcome, startsAt := QualifySession(session, movie, now)
				if outcome != SessionQualifies {
					continue
				}

				if nearest != nil && !startsAt.Before(nearest.StartsAt) {
					continue
				}

				nearest = &NearestSession{
					Theatre:         theatre.Name,
					HallNumber:      hall.Number,
					SessionIndex:    j,
					Movie:           session.Movie,
					StartTime:       session.StartTime,
					DurationMinutes: session.DurationMinutes,
					StartsAt:        startsAt,
				}
			}
		}
	}

	if nearest == nil {
		return nil, ErrNoUpcomingSessions
	}

	return nearest, nil
}
