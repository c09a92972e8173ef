package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	fk := &pq.Error{Code: "23503"}
	serialization := fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})
	deadlock := &pq.Error{Code: "40P01"}
	plain := errors.New("connection refused")

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsSerializationFailure(serialization))
	assert.True(t, IsSerializationFailure(deadlock))

	assert.False(t, IsUniqueViolation(plain))
	assert.False(t, IsSerializationFailure(unique))
	assert.Equal(t, pq.ErrorCode(""), Code(plain))
}
