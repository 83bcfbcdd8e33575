package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// OrphanCounter reports bugs whose project no longer exists.
type OrphanCounter interface {
	CountOrphanedBugs() (int64, error)
}

// StartOrphanReport schedules ReportOrphanedBugs on the given cron schedule
// (descriptors such as "@every 24h" are accepted). An empty schedule disables the
// report and returns a nil scheduler.
func StartOrphanReport(schedule string, counter OrphanCounter) (*cron.Cron, error) {
	if schedule == "" {
		log.Info().Msg("orphaned bug report disabled")
		return nil, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { ReportOrphanedBugs(counter) }); err != nil {
		return nil, fmt.Errorf("invalid orphan report schedule %q: %w", schedule, err)
	}
	c.Start()
	log.Info().Str("schedule", schedule).Msg("orphaned bug report scheduled")
	return c, nil
}

// ReportOrphanedBugs logs how many bugs reference a deleted project.
func ReportOrphanedBugs(counter OrphanCounter) (int64, error) {
	n, err := counter.CountOrphanedBugs()
	if err != nil {
		log.Error().Err(err).Msg("failed to count orphaned bugs")
		return 0, err
	}
	if n > 0 {
		log.Warn().Int64("orphaned_bugs", n).Msg("bugs reference deleted projects")
	} else {
		log.Debug().Msg("no orphaned bugs")
	}
	return n, nil
}
