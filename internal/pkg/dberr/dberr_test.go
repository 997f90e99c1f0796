package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: profiles.email (2067)")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("get: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
}
