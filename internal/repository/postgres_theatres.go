package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selinkose/cinema-ticketing/internal/domain"
)

// PostgresTheatreRegistry stores each theatre as one row holding the whole
// aggregate as JSONB. Every mutation is a whole-aggregate write; callers
// serialize writers per theatre through a TheatreLocker.
type PostgresTheatreRegistry struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreRegistry(db *pgxpool.Pool) *PostgresTheatreRegistry {
	return &PostgresTheatreRegistry{
		db: db,
	}
}

func (p *PostgresTheatreRegistry) Create(ctx context.Context, name string) (*domain.Theatre, error) {
	theatre, err := domain.NewTheatre(name)
	if err != nil {
		return nil, err
	}

	halls, err := marshalHalls(theatre)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO theatres (name, halls) VALUES ($1, $2)`

	_, err = p.db.Exec(ctx, query, theatre.Name, halls)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrTheatreExists
		}

		return nil, err
	}

	return theatre, nil
}

func (p *PostgresTheatreRegistry) Load(ctx context.Context, name string) (*domain.Theatre, error) {
	query := `SELECT halls FROM theatres WHERE name = $1`

	var halls []byte

	err := p.db.QueryRow(ctx, query, name).Scan(&halls)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTheatreNotFound
		}

		return nil, err
	}

	var records []hallRecord
	if err := json.Unmarshal(halls, &records); err != nil {
		return nil, fmt.Errorf("decode theatre %q: %w", name, err)
	}

	return &domain.Theatre{Name: name, Halls: toHalls(records)}, nil
}

func (p *PostgresTheatreRegistry) Save(ctx context.Context, theatre *domain.Theatre) error {
	halls, err := marshalHalls(theatre)
	if err != nil {
		return err
	}

	query := `UPDATE theatres SET halls = $2, updated_at = now() WHERE name = $1`

	tag, err := p.db.Exec(ctx, query, theatre.Name, halls)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTheatreNotFound
	}

	return nil
}

// Names lists theatre names in registration order. The nearest-session
// search scans theatres in exactly this order.
func (p *PostgresTheatreRegistry) Names(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM theatres ORDER BY created_at, name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func marshalHalls(theatre *domain.Theatre) ([]byte, error) {
	halls, err := json.Marshal(toHallRecords(theatre.Halls))
	if err != nil {
		return nil, fmt.Errorf("encode theatre %q: %w", theatre.Name, err)
	}

	return halls, nil
}
