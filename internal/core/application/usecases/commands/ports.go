// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, domain action, persistence through the backend collaborator.
package commands

// JobStopper stops the background polling jobs. Satisfied by
// jobs.JobManager; declared here so the logout handler does not depend on
// the jobs package.
type JobStopper interface {
	StopAll()
}
