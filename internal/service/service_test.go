package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mergington-high/activities-api/internal/registry"
)

func newTestService(t *testing.T) *ActivityService {
	reg := registry.New(registry.DefaultActivities())
	return New(reg, zaptest.NewLogger(t))
}

func TestSignupConfirmationMessage(t *testing.T) {
	svc := newTestService(t)

	msg, err := svc.Signup(context.Background(), "Chess Club", "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up a@b.edu for Chess Club", msg)
}

func TestSignupEchoesEmailVerbatim(t *testing.T) {
	svc := newTestService(t)

	// No normalization: the confirmation carries exactly what was submitted.
	msg, err := svc.Signup(context.Background(), "Chess Club", "Test.User+tag@Mergington.EDU")
	require.NoError(t, err)
	assert.Equal(t, "Signed up Test.User+tag@Mergington.EDU for Chess Club", msg)
}

func TestSignupErrorsPassThrough(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Drama Club", "a@b.edu")
	assert.ErrorIs(t, err, registry.ErrActivityNotFound)

	_, err = svc.Signup(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, registry.ErrAlreadySignedUp)
}

func TestUnregisterConfirmationMessage(t *testing.T) {
	svc := newTestService(t)

	msg, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", msg)
}

func TestUnregisterErrorsPassThrough(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Unregister(ctx, "Drama Club", "a@b.edu")
	assert.ErrorIs(t, err, registry.ErrActivityNotFound)

	_, err = svc.Unregister(ctx, "Chess Club", "stranger@mergington.edu")
	assert.ErrorIs(t, err, registry.ErrNotRegistered)
}

func TestListSnapshot(t *testing.T) {
	svc := newTestService(t)

	activities := svc.List(context.Background())
	require.Contains(t, activities, "Chess Club")
	assert.Equal(t, 12, activities["Chess Club"].MaxParticipants)
}
