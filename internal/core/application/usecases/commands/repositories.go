// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"freightmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InquiryRepoFactory provides access to the inquiry repository within a
	// transaction.
	InquiryRepoFactory interface {
		InquiryRepository() ports.InquiryRepository
	}

	// QuotationRepoFactory provides access to the quotation repository
	// within a transaction.
	QuotationRepoFactory interface {
		QuotationRepository() ports.QuotationRepository
	}

	// SubscriptionRepoFactory provides access to the subscription repository
	// within a transaction.
	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	// ConnectionRepoFactory provides access to the connection repository
	// within a transaction.
	ConnectionRepoFactory interface {
		ConnectionRepository() ports.ConnectionRepository
	}

	// InquiryUoW manages transactions for inquiry-only operations.
	InquiryUoW interface {
		TxManager
		InquiryRepoFactory
	}

	// InquiryUoWFactory creates inquiry unit of work instances.
	InquiryUoWFactory interface {
		Create() InquiryUoW
	}

	// QuotationUoW manages transactions for quotation-only operations.
	QuotationUoW interface {
		TxManager
		QuotationRepoFactory
	}

	// QuotationUoWFactory creates quotation unit of work instances.
	QuotationUoWFactory interface {
		Create() QuotationUoW
	}

	// UoW manages transactions across all marketplace aggregates. Used for
	// commands that coordinate changes between aggregate types, such as
	// submitting a quotation (quotation, forwarder response, quota reads)
	// or awarding an inquiry (inquiry plus every quotation on it).
	UoW interface {
		TxManager
		InquiryRepoFactory
		QuotationRepoFactory
		SubscriptionRepoFactory
		ConnectionRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
