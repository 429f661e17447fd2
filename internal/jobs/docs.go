// Package jobs provides scheduled background tasks for the deliveries service.
//
// Jobs are built on github.com/robfig/cron/v3 and share the Job lifecycle
// (Start/Stop) so that JobManager can run them together.
//
// # Available Jobs
//
// DeliveryExpirationJob sweeps for deliveries whose access window has ended
// and moves each one to Expired. It runs once at Start and then every
// interval (30 minutes by default).
//
// # Usage
//
//	job := jobs.NewDeliveryExpirationJob(&expiredHandler, &updateHandler, clock.System(), 0, logger)
//	manager := jobs.NewJobManager(job)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// Each sweep is its own failure boundary. The first error ends the sweep and
// is logged; the next scheduled sweep runs as normal. Panics are recovered by
// the cron chain.
package jobs
