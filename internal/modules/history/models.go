package history

import "time"

// Resolution is one completed price lookup, kept for diagnostics. The
// pricing pipeline itself is stateless and never reads these rows.
type Resolution struct {
	ID          string    `json:"id"`
	Player      string    `json:"player"`
	Sport       string    `json:"sport"`
	Query       string    `json:"query"`
	Found       bool      `json:"found"`
	Price       float64   `json:"price"`
	SampleCount int       `json:"sample_count"`
	Source      string    `json:"source"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
