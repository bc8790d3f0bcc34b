package domain

// SeatGrid holds the occupancy state of one session's seats. Indices are
// zero-based; false means free, true means sold. A sold seat never goes back
// to free: there is no cancellation path.
type SeatGrid [][]bool

// NewSeatGrid allocates an all-free grid of rows x seatsPerRow seats.
func NewSeatGrid(rows, seatsPerRow int) SeatGrid {
	grid := make(SeatGrid, rows)
	for i := range grid {
		grid[i] = make([]bool, seatsPerRow)
	}

	return grid
}

func (g SeatGrid) Rows() int {
	return len(g)
}

func (g SeatGrid) SeatsPerRow() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// Sell marks a seat as sold. Validation is sequential: row bounds, then seat
// bounds, then occupancy. The grid is untouched when any check fails, and a
// repeated sale of the same seat is rejected with ErrSeatAlreadySold rather
// than silently ignored.
func (g SeatGrid) Sell(row, seat int) error {
	if row < 0 || row >= g.Rows() {
		return ErrInvalidRow
	}
	if seat < 0 || seat >= g.SeatsPerRow() {
		return ErrInvalidSeat
	}
	if g[row][seat] {
		return ErrSeatAlreadySold
	}

	g[row][seat] = true

	return nil
}

// Sold reports whether the seat at the given position is sold. Out-of-range
// positions read as free.
func (g SeatGrid) Sold(row, seat int) bool {
	if row < 0 || row >= g.Rows() || seat < 0 || seat >= g.SeatsPerRow() {
		return false
	}

	return g[row][seat]
}

// HasFreeSeat reports whether at least one seat is still free, stopping at
// the first free seat it finds.
func (g SeatGrid) HasFreeSeat() bool {
	for _, row := range g {
		for _, sold := range row {
			if !sold {
				return true
			}
		}
	}

	return false
}

func (g SeatGrid) FreeSeats() int {
	free := 0

	for _, row := range g {
		for _, sold := range row {
			if !sold {
				free++
			}
		}
	}

	return free
}

func (g SeatGrid) SoldSeats() int {
	return g.Rows()*g.SeatsPerRow() - g.FreeSeats()
}
