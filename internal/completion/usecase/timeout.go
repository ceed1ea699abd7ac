package usecase

import (
	"time"

	"task-assistant/internal/model"
	"task-assistant/pkg/schedule"
)

const (
	baseTimeout          = 30 * time.Second
	longMessageExtra     = 15 * time.Second
	batchExtra           = 20 * time.Second
	complexRecurExtra    = 10 * time.Second
	longMessageThreshold = 200
)

// Timeout grows the request deadline with the size of the job.
func Timeout(message string, pre model.TaskParameters) time.Duration {
	t := baseTimeout
	if len(message) > longMessageThreshold {
		t += longMessageExtra
	}
	if pre.IsBatch() {
		t += batchExtra
	}
	if pre.Recurring() && (pre.FreqType == schedule.FreqAnnualDate || pre.FreqType == schedule.FreqYearly) {
		t += complexRecurExtra
	}
	return t
}
