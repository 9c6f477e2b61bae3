package cron

import (
	"fmt"

	"github.com/Dias221467/Alumni_Connect/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartSessionCronJobs schedules the idle-session sweep and starts the cron runner.
// The caller stops it on shutdown.
func StartSessionCronJobs(sweeper *jobs.SessionSweeper, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("Session sweep panicked: %v", r)
			}
		}()
		sweeper.RunSweep()
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session sweep schedule %q: %w", schedule, err)
	}

	c.Start()
	logrus.WithField("schedule", schedule).Info("Session sweep scheduled")
	return c, nil
}
