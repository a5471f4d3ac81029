package service_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingScrubsCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	verified := registerVerified(t, st, "shiny")
	pending, _ := register(t, st, "pending")

	hk := service.NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Cleanup()

	// Verified account loses its leftover code
	acct, err := st.Accounts().GetByID(ctx, verified.Account.ID)
	require.NoError(t, err)
	require.Empty(t, acct.VerifyCode)

	// Unverified account keeps its code: it still needs it
	acct, err = st.Accounts().GetByID(ctx, pending.Account.ID)
	require.NoError(t, err)
	require.NotEmpty(t, acct.VerifyCode)
}

func TestHousekeepingLifecycle(t *testing.T) {
	st := newTestStore(t)

	hk := service.NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop() // blocks until the worker exits
}
