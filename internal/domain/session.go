package domain

import "time"

// StartTimeLayout is the only format session start times are stored and
// parsed in. No timezone is represented.
const StartTimeLayout = "2006-01-02 15:04"

// Session is one scheduled screening of one movie in one hall. StartTime is
// kept verbatim as text; whether it parses is the consumer's concern, not the
// creator's (see QualifySession).
type Session struct {
	Movie           string
	StartTime       string
	DurationMinutes int
	Seats           SeatGrid
}

// StartsAt parses the stored start time.
func (s *Session) StartsAt() (time.Time, error) {
	return time.Parse(StartTimeLayout, s.StartTime)
}

// HallPlan is a read-only rendering of a session's seat map. Row labels are
// 1-based for display. FreeSeats + SoldSeats always equals the hall capacity.
type HallPlan struct {
	Rows      []PlanRow
	FreeSeats int
	SoldSeats int
}

type PlanRow struct {
	Number int
	Seats  []bool
}

// Plan renders the current seat map. It copies the grid, so the plan stays
// stable if seats are sold afterwards.
func (s *Session) Plan() HallPlan {
	plan := HallPlan{Rows: make([]PlanRow, 0, s.Seats.Rows())}

	for i, row := range s.Seats {
		seats := make([]bool, len(row))
		copy(seats, row)

		for _, sold := range row {
			if sold {
				plan.SoldSeats++
			} else {
				plan.FreeSeats++
			}
		}

		plan.Rows = append(plan.Rows, PlanRow{Number: i + 1, Seats: seats})
	}

	return plan
}
