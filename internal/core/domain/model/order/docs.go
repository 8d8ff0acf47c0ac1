// Package order contains the seed-treatment order aggregate and its
// lifecycle state machine.
//
// An order moves through a fixed graph of statuses:
//
//	RecipeCreated ──> LabAssignmentCreated ──> LabToControl ──> TkwConfirmed
//	      │                                                          │
//	      └────────────────── (lab workflow off) ──────────┐         │
//	                                                       v         v
//	                                             TreatmentInProgress
//	                                              │        │        │
//	                                              v        v        v
//	                                         Completed  Failed  ToAcknowledge
//	                                              │        │        │
//	                                              └────────┴────────┘
//	                                                       v
//	                                                   Archived
//
// Every edge is owned by exactly one role; CanTransition answers both
// reachability and authorization in one call. Transitions only mutate the
// in-memory aggregate; persisting the result is the backend's business.
//
// Finalizing (the Manager edge into Completed) additionally requires the
// dosage numbers computed by the remote slurry service to be present; a
// missing number fails with errs.PreconditionNotMetError and leaves the
// order untouched.
package order
