package domain

// Ticket summarizes one completed seat sale. Row and Seat are 1-based for
// display.
type Ticket struct {
	Theatre   string
	Hall      int
	Movie     string
	StartTime string
	Row       int
	Seat      int
}

// SellSeat books a single zero-based seat of a session. Validation is
// sequential and each failure is terminal: hall, then session, then row, then
// seat, then occupancy. Nothing is mutated before every check has passed, so
// a failed sale never leaves a partial side effect behind.
func (t *Theatre) SellSeat(hallNumber, sessionIndex, row, seat int) (*Ticket, error) {
	hall, err := t.Hall(hallNumber)
	if err != nil {
		return nil, err
	}

	session, err := hall.Session(sessionIndex)
	if err != nil {
		return nil, err
	}

	if err := session.Seats.Sell(row, seat); err != nil {
		return nil, err
	}

	return &Ticket{
		Theatre:   t.Name,
		Hall:      hall.Number,
		Movie:     session.Movie,
		StartTime: session.StartTime,
		Row:       row + 1,
		Seat:      seat + 1,
	}, nil
}
