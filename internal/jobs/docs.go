// Package jobs provides scheduled background work for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and drive the same command handlers as the HTTP API.
//
// # Available Jobs
//
//  1. GeocodeRetryJob - every five minutes by default, resolves coordinates of
//     active tasks whose address was never geocoded
//  2. AutoDispatchJob - optional, assigns today's unassigned, geocoded, pending
//     tasks to the best scoring driver
//
// # Usage
//
//	jobManager := jobs.NewJobManager(geocodeRetryJob, autoDispatchJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs skip and continue: a task that fails is logged and left for the
// next run. An exhausted fleet (services.ErrNoDriverAvailable) is not logged
// as a failure.
package jobs
