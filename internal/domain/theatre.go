package domain

// Theatre is a named venue aggregate and the unit of persistence. Its name is
// an opaque registry key fixed at creation; state changes only by appending
// halls and sessions and by selling seats. There is no deletion operation.
type Theatre struct {
	Name  string
	Halls []Hall
}

func NewTheatre(name string) (*Theatre, error) {
	if name == "" {
		return nil, ErrEmptyTheatreName
	}

	return &Theatre{Name: name}, nil
}

// Hall is a physical room with fixed geometry. Rows and SeatsPerRow never
// change after creation, so every session grid in the hall matches them
// exactly. Sessions are append-only; a session's index in the slice is its
// stable identifier.
type Hall struct {
	Number      int
	Rows        int
	SeatsPerRow int
	Sessions    []Session
}

// AddHall appends a new empty hall. Hall numbers are unique within the
// theatre and non-positive geometry is rejected outright.
func (t *Theatre) AddHall(number, rows, seatsPerRow int) (*Hall, error) {
	if rows < 1 || seatsPerRow < 1 {
		return nil, ErrInvalidGeometry
	}

	for i := range t.Halls {
		if t.Halls[i].Number == number {
			return nil, ErrDuplicateHall
		}
	}

	t.Halls = append(t.Halls, Hall{Number: number, Rows: rows, SeatsPerRow: seatsPerRow})

	return &t.Halls[len(t.Halls)-1], nil
}

// Hall finds a hall by number. Halls are few, so this is a plain linear scan.
func (t *Theatre) Hall(number int) (*Hall, error) {
	for i := range t.Halls {
		if t.Halls[i].Number == number {
			return &t.Halls[i], nil
		}
	}

	return nil, ErrHallNotFound
}

// AddSession schedules a screening with an all-free grid matching the hall
// geometry. The start time is stored verbatim: a value that does not parse is
// accepted here and skipped later by the nearest-session search.
func (h *Hall) AddSession(movie, startTime string, durationMinutes int) (*Session, error) {
	if movie == "" {
		return nil, ErrEmptyMovieName
	}
	if durationMinutes < 1 {
		return nil, ErrInvalidDuration
	}

	h.Sessions = append(h.Sessions, Session{
		Movie:           movie,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Seats:           NewSeatGrid(h.Rows, h.SeatsPerRow),
	})

	return &h.Sessions[len(h.Sessions)-1], nil
}

// Session finds a session by its append-order index.
func (h *Hall) Session(index int) (*Session, error) {
	if index < 0 || index >= len(h.Sessions) {
		return nil, ErrSessionNotFound
	}

	return &h.Sessions[index], nil
}
