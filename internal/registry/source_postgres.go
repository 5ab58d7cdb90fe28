package registry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads registry collections from PostgreSQL.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs a PostgreSQL-backed registry source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) Rooms(ctx context.Context, building string) ([]Room, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, room_id, room_number, courtroom_number, is_active
		   FROM rooms
		  WHERE building = $1 AND is_active`, building)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []Room
	for rows.Next() {
		var r Room
		if err := rows.Scan(&r.ID, &r.RoomID, &r.RoomNumber, &r.CourtroomNumber, &r.IsActive); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return rooms, nil
}

func (s *PostgresSource) Personnel(ctx context.Context) ([]PersonnelProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, display_name, full_name, title, department
		   FROM personnel
		  ORDER BY display_name`)
	if err != nil {
		return nil, fmt.Errorf("query personnel: %w", err)
	}
	defer rows.Close()

	var profiles []PersonnelProfile
	for rows.Next() {
		var p PersonnelProfile
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.FullName, &p.Title, &p.Department); err != nil {
			return nil, fmt.Errorf("scan personnel: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate personnel: %w", err)
	}
	return profiles, nil
}

func (s *PostgresSource) Assignments(ctx context.Context) ([]Assignment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, room_id, justice_name, clerk_names, sergeant_name
		   FROM room_assignments
		  WHERE is_current`)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.RoomID, &a.JusticeName, &a.ClerkNames, &a.SergeantName); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return assignments, nil
}
