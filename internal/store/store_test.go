package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyDSNRejected(t *testing.T) {
	s, err := New(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "DSN")
}

func TestNew_MalformedDSNRejected(t *testing.T) {
	s, err := New(context.Background(), "not-a-dsn://%%%")
	require.Error(t, err)
	assert.Nil(t, s)
}
