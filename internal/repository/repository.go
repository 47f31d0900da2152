package repository

import "contestbot/internal/domain"

// Registry is the durable, append-only log of contest submissions.
// Records are never mutated or deleted; a user may appear more than once.
type Registry interface {
	LoadAll() ([]domain.Submission, error)
	Append(domain.Submission) error
}
