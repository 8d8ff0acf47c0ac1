// Package account models the authenticated user, the roles a user can hold,
// and the features each role may see.
//
// Roles gate two things: which lifecycle transitions a user may trigger on an
// order (enforced by the order package) and which work queues and polling
// feeds are visible (enforced through the Role -> Feature capability map).
// The laboratory review stage is additionally gated by a per-company feature
// flag carried on the user's company record, not on individual orders.
package account
