package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/store"
)

func TestActivityService_SignupAndUnregister(t *testing.T) {
	s := NewActivityService(store.NewActivityRepository())
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, "Art Club", "new@mergington.edu"))

	activities, err := s.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, activities["Art Club"].Participants, "new@mergington.edu")

	assert.ErrorIs(t, s.Signup(ctx, "Art Club", "new@mergington.edu"), store.ErrAlreadySignedUp)

	require.NoError(t, s.Unregister(ctx, "Art Club", "new@mergington.edu"))
	assert.ErrorIs(t, s.Unregister(ctx, "Art Club", "new@mergington.edu"), store.ErrNotSignedUp)
}

func TestActivityService_UnknownActivity(t *testing.T) {
	s := NewActivityService(store.NewActivityRepository())
	ctx := context.Background()

	assert.ErrorIs(t, s.Signup(ctx, "Knitting Circle", "a@mergington.edu"), store.ErrNotFound)
	assert.ErrorIs(t, s.Unregister(ctx, "Knitting Circle", "a@mergington.edu"), store.ErrNotFound)
}
