package subscriptionrepo

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("should recognize the translated gorm error", func(t *testing.T) {
		assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("should recognize a raw pgx unique violation", func(t *testing.T) {
		assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	})

	t.Run("should recognize a raw lib/pq unique violation", func(t *testing.T) {
		assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	})

	t.Run("should recognize wrapped unique violations", func(t *testing.T) {
		err := fmt.Errorf("create subscription: %w", &pgconn.PgError{Code: "23505"})

		assert.True(t, isUniqueViolation(err))
	})

	t.Run("should not match other database errors", func(t *testing.T) {
		assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
		assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
		assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	})
}
