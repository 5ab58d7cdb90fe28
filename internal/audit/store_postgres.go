package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists audit records in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Append(ctx context.Context, rec Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO extraction_audit
		   (id, file_path, report_date, building, parts_extracted, total_cases, raw_response_length, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.FilePath, rec.ReportDate, rec.Building,
		rec.PartsExtracted, rec.TotalCases, rec.RawResponseLength, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByFile(ctx context.Context, filePath string) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, file_path, report_date, building, parts_extracted, total_cases, raw_response_length, created_at
		   FROM extraction_audit
		  WHERE file_path = $1
		  ORDER BY created_at DESC`, filePath)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.FilePath, &rec.ReportDate, &rec.Building,
			&rec.PartsExtracted, &rec.TotalCases, &rec.RawResponseLength, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit records: %w", err)
	}
	return records, nil
}
