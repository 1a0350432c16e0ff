// Package jobs provides scheduled background tasks for the order desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PaymentReminderJob texts every customer whose order still has a remaining
// balance, once per schedule tick (09:00 daily unless configured otherwise).
//
// # Usage
//
//	reminders := jobs.NewPaymentReminderJob(&handler, cfg.ReminderSchedule, m, logger)
//	jobManager := jobs.NewJobManager(reminders)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field,
// for example "0 0 9 * * *".
//
// # Error Handling
//
// A batch that fails part-way is logged together with the number of reminders that
// did go out; the next tick starts a fresh batch.
package jobs
