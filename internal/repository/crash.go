package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/air_crash_atlas/internal/models"
)

type CrashRepository struct {
	db *pgxpool.Pool
}

func NewCrashRepository(db *pgxpool.Pool) *CrashRepository {
	return &CrashRepository{db: db}
}

// Load возвращает все записи в порядке их позиции в наборе данных
func (r *CrashRepository) Load(ctx context.Context) ([]models.CrashRecord, error) {
	query := `
		SELECT
			position,
			location,
			year,
			type,
			fatalities,
			country,
			latitude,
			longitude
		FROM crashes
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load crashes: %w", err)
	}
	defer rows.Close()

	records := make([]models.CrashRecord, 0)
	for rows.Next() {
		var record models.CrashRecord
		err := rows.Scan(
			&record.ID,
			&record.Location,
			&record.Year,
			&record.Type,
			&record.Fatalities,
			&record.Country,
			&record.Latitude,
			&record.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crash row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error crash iteration: %w", err)
	}

	// позиции в таблице могут иметь пропуски, ID должен совпадать с индексом в слайсе
	for i := range records {
		records[i].ID = i
	}
	return records, nil
}

// Count возвращает количество записей в таблице
func (r *CrashRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM crashes;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count crashes: %w", err)
	}
	return count, nil
}

// ReplaceAll заменяет содержимое таблицы переданными записями в одной транзакции
func (r *CrashRepository) ReplaceAll(ctx context.Context, records []models.CrashRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `TRUNCATE TABLE crashes;`); err != nil {
		return fmt.Errorf("failed to truncate crashes: %w", err)
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{i, rec.Location, rec.Year, rec.Type, rec.Fatalities, rec.Country, rec.Latitude, rec.Longitude}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"crashes"},
		[]string{"position", "location", "year", "type", "fatalities", "country", "latitude", "longitude"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy crashes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}
