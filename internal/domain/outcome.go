package domain

import "time"

type LoadStatus string

const (
	LoadStatusSuccess LoadStatus = "success"
	LoadStatusFailure LoadStatus = "failure"
)

// LoadOutcome is the terminal state of one category load.
type LoadOutcome struct {
	Category   Category      `json:"category"`
	Status     LoadStatus    `json:"status"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
	FinishedAt time.Time     `json:"finished_at"`
}
