package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per request or command,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the transaction.
// Client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after Begin; a rollback after commit is a no-op error.
	Rollback(ctx context.Context) error

	// InquiryRepository returns an InquiryRepository bound to the current
	// transaction.
	InquiryRepository() InquiryRepository

	// QuotationRepository returns a QuotationRepository bound to the current
	// transaction.
	QuotationRepository() QuotationRepository

	// SubscriptionRepository returns a SubscriptionRepository bound to the
	// current transaction.
	SubscriptionRepository() SubscriptionRepository

	// ConnectionRepository returns a ConnectionRepository bound to the
	// current transaction.
	ConnectionRepository() ConnectionRepository
}
