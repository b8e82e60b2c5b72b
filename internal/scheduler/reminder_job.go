package scheduler

import (
	"context"
	"time"
)

// ReminderSender runs one savings reminder pass.
type ReminderSender interface {
	SendDue(ctx context.Context) (int, error)
}

// ReminderJob adapts the reminder use case to the scheduler.
type ReminderJob struct {
	sender  ReminderSender
	timeout time.Duration
}

// NewReminderJob creates a new ReminderJob.
func NewReminderJob(sender ReminderSender, timeout time.Duration) *ReminderJob {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &ReminderJob{sender: sender, timeout: timeout}
}

// Name implements Job.
func (j *ReminderJob) Name() string { return "savings_reminder" }

// Run implements Job.
func (j *ReminderJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	_, err := j.sender.SendDue(ctx)
	return err
}
