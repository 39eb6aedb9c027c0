package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Repository handles resolution history persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new history repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "history").Logger(),
	}
}

// Record saves a completed resolution. Implements the pricing recorder
// contract.
func (r *Repository) Record(card domain.CardQuery, query string, result domain.PriceResult) error {
	res := &Resolution{
		ID:          uuid.New().String(),
		Player:      card.Player,
		Sport:       string(card.Sport),
		Query:       query,
		Found:       result.Found,
		Price:       result.Price,
		SampleCount: result.SampleCount,
		Source:      string(result.Source),
		Message:     result.Message,
		CreatedAt:   time.Now().UTC(),
	}
	return r.Create(res)
}

// Create inserts a resolution row
func (r *Repository) Create(res *Resolution) error {
	query := `
		INSERT INTO resolutions (
			id, player, sport, query, found, price, sample_count, source, message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		res.ID,
		res.Player,
		res.Sport,
		res.Query,
		res.Found,
		res.Price,
		res.SampleCount,
		res.Source,
		res.Message,
		res.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert resolution: %w", err)
	}

	return nil
}

// List returns the most recent resolutions, newest first
func (r *Repository) List(limit int) ([]Resolution, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, player, sport, query, found, price, sample_count, source, message, created_at
		FROM resolutions
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolutions: %w", err)
	}
	defer rows.Close()

	var resolutions []Resolution
	for rows.Next() {
		var res Resolution
		var createdAt string

		err := rows.Scan(
			&res.ID,
			&res.Player,
			&res.Sport,
			&res.Query,
			&res.Found,
			&res.Price,
			&res.SampleCount,
			&res.Source,
			&res.Message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resolution: %w", err)
		}

		res.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		resolutions = append(resolutions, res)
	}

	return resolutions, rows.Err()
}

// PurgeOlderThan deletes resolutions older than the cutoff and returns the
// number of rows removed
func (r *Repository) PurgeOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		`DELETE FROM resolutions WHERE created_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge resolutions: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purge count: %w", err)
	}

	return deleted, nil
}
