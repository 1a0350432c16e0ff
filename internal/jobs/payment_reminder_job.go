package jobs

import (
	"context"
	"log/slog"
	"time"

	"paperwork/internal/core/application/usecases/commands"
	"paperwork/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule runs the reminder batch at 09:00 every day.
const DefaultReminderSchedule = "0 0 9 * * *"

// ReminderHandler sends one batch of payment reminders.
// *commands.SendPaymentRemindersCommandHandler implements it.
type ReminderHandler interface {
	Handle(ctx context.Context, cmd commands.SendPaymentRemindersCommand) (int, error)
}

// PaymentReminderJob texts customers whose orders still carry a balance.
type PaymentReminderJob struct {
	handler  ReminderHandler
	schedule string
	timeout  time.Duration
	metrics  *metrics.Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaymentReminderJob creates the job. schedule is a six-field cron expression
// with seconds; an empty one means DefaultReminderSchedule. m may be nil.
func NewPaymentReminderJob(
	handler ReminderHandler,
	schedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *PaymentReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	return &PaymentReminderJob{
		handler:  handler,
		schedule: schedule,
		timeout:  time.Minute,
		metrics:  m,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "payment_reminder_job"),
	}
}

// Start schedules the batch.
func (j *PaymentReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started", "schedule", j.schedule)
	return nil
}

// Run sends one batch now. A batch that partly failed still counts what was sent.
func (j *PaymentReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	sent, err := j.handler.Handle(ctx, commands.NewSendPaymentRemindersCommand())
	if j.metrics != nil {
		j.metrics.RemindersSent.Add(float64(sent))
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reminder job failed", "error", err, "sent", sent)
		return
	}
	j.logger.InfoContext(ctx, "Payment reminders sent", "sent", sent)
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *PaymentReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}
