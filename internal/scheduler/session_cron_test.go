package cron

import (
	"testing"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/jobs"
	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionCronJobsRejectsBadSchedule(t *testing.T) {
	sweeper := jobs.NewSessionSweeper(session.NewManager(nil), time.Minute)

	_, err := StartSessionCronJobs(sweeper, "every now and then")
	assert.Error(t, err)
}

func TestStartSessionCronJobsRegistersSweep(t *testing.T) {
	sweeper := jobs.NewSessionSweeper(session.NewManager(nil), time.Minute)

	c, err := StartSessionCronJobs(sweeper, "@every 1h")
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
