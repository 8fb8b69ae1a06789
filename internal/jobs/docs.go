// Package jobs provides scheduled background tasks for the tracking service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// DeliveryProgressJob runs every second. It projects every order placed within
// the lookback window and logs each status transition
// (Preparing, Out for delivery, Delivered) once per order.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(recentOrdersHandler, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # State
//
// The last seen status per order lives in memory only. After a restart every
// recent order is reported once more with "from" set to "none".
package jobs
