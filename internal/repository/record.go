package repository

import "github.com/selinkose/cinema-ticketing/internal/domain"

// Persisted record shape of a theatre aggregate. Domain entities stay free
// of serialization tags; these records are the only place the stored JSON
// layout is spelled out.
type hallRecord struct {
	Number      int             `json:"number"`
	Rows        int             `json:"rows"`
	SeatsPerRow int             `json:"seats_per_row"`
	Sessions    []sessionRecord `json:"sessions"`
}

type sessionRecord struct {
	Movie     string   `json:"movie"`
	StartTime string   `json:"start_time"`
	Duration  int      `json:"duration"`
	Seats     [][]bool `json:"seats"`
}

func toHallRecords(halls []domain.Hall) []hallRecord {
	records := make([]hallRecord, len(halls))

	for i, hall := range halls {
		sessions := make([]sessionRecord, len(hall.Sessions))

		for j, session := range hall.Sessions {
			seats := make([][]bool, session.Seats.Rows())
			for r, row := range session.Seats {
				seats[r] = make([]bool, len(row))
				copy(seats[r], row)
			}

			sessions[j] = sessionRecord{
				Movie:     session.Movie,
				StartTime: session.StartTime,
				Duration:  session.DurationMinutes,
				Seats:     seats,
			}
		}

		records[i] = hallRecord{
			Number:      hall.Number,
			Rows:        hall.Rows,
			SeatsPerRow: hall.SeatsPerRow,
			Sessions:    sessions,
		}
	}

	return records
}

func toHalls(records []hallRecord) []domain.Hall {
	halls := make([]domain.Hall, len(records))

	for i, record := range records {
		sessions := make([]domain.Session, len(record.Sessions))

		for j, session := range record.Sessions {
			sessions[j] = domain.Session{
				Movie:           session.Movie,
				StartTime:       session.StartTime,
				DurationMinutes: session.Duration,
				Seats:           domain.SeatGrid(session.Seats),
			}
		}

		halls[i] = domain.Hall{
			Number:      record.Number,
			Rows:        record.Rows,
			SeatsPerRow: record.SeatsPerRow,
			Sessions:    sessions,
		}
	}

	return halls
}
