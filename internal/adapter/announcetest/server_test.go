package announcetest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/signpost/internal/adapter"
	"github.com/MKhiriev/signpost/internal/adapter/announcetest"
	"github.com/MKhiriev/signpost/internal/config"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, srv *announcetest.Server) adapter.ServiceAdapter {
	t.Helper()
	a, err := adapter.NewHTTPServiceAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func serviceMessage(t *testing.T, err error) string {
	t.Helper()
	var svcErr *adapter.ServiceError
	require.True(t, errors.As(err, &svcErr), "expected *ServiceError, got %v", err)
	return svcErr.Message
}

func TestServer_SetGetDelete(t *testing.T) {
	srv := announcetest.NewServer(t)
	a := newAdapter(t, srv)
	ctx := context.Background()

	require.NoError(t, a.SetAnnouncement(ctx, models.SetRequest{Key: "promo", Value: "Sale!", Secret: "s1", ExpiresAt: -1, Public: true}))

	got, err := a.GetAnnouncement(ctx, "promo", models.Credentials{Secret: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Sale!", got.Content)
	assert.False(t, got.HasExpiry())

	require.NoError(t, a.DeleteAnnouncement(ctx, models.DeleteRequest{Key: "promo", Secret: "s1"}))
	assert.False(t, srv.Has("promo"))
	assert.Equal(t, 3, srv.Requests())
}

func TestServer_GetStatuses(t *testing.T) {
	srv := announcetest.NewServer(t)
	srv.Put("hidden", "x", "right", false, 0)
	a := newAdapter(t, srv)

	_, err := a.GetAnnouncement(context.Background(), "missing", models.Credentials{Secret: "right"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, announcetest.MsgNotFound, serviceMessage(t, err))

	_, err = a.GetAnnouncement(context.Background(), "hidden", models.Credentials{Secret: "wrong"})
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Equal(t, announcetest.MsgSecretRequired, serviceMessage(t, err))
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestServer_Expiry(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: now}
	srv := announcetest.NewServer(t, announcetest.WithClock(clock.Now))
	a := newAdapter(t, srv)
	ctx := context.Background()

	require.NoError(t, a.SetAnnouncement(ctx, models.SetRequest{Key: "k", Value: "v", Secret: "s", ExpiresAt: 60, Public: true}))

	exp, ok := srv.ExpiresAt("k")
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Minute), exp)

	got, err := a.GetAnnouncement(ctx, "k", models.Credentials{Secret: "s"})
	require.NoError(t, err)
	require.True(t, got.HasExpiry())
	assert.True(t, got.ExpiresAt.Time.Equal(now.Add(time.Minute)))

	clock.Advance(2 * time.Minute)
	_, err = a.GetAnnouncement(ctx, "k", models.Credentials{Secret: "s"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestServer_DeleteWrongSecret(t *testing.T) {
	srv := announcetest.NewServer(t)
	srv.Put("k", "v", "s", true, 0)
	a := newAdapter(t, srv)

	err := a.DeleteAnnouncement(context.Background(), models.DeleteRequest{Key: "k", Secret: "bad"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, announcetest.MsgInvalidSecret, serviceMessage(t, err))
	assert.True(t, srv.Has("k"))
}

func TestServer_PrivateInstance(t *testing.T) {
	srv := announcetest.NewServer(t, announcetest.WithMasterPassword("mp"))
	srv.Put("k", "v", "s", true, 0)
	a := newAdapter(t, srv)
	ctx := context.Background()

	policy, err := a.GetInstancePolicy(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PolicyPrivate, policy)

	_, err = a.GetAnnouncement(ctx, "k", models.Credentials{Secret: "s"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	got, err := a.GetAnnouncement(ctx, "k", models.Credentials{Secret: "s", MasterPassword: "mp"})
	require.NoError(t, err)
	assert.Equal(t, "v", got.Content)

	err = a.SetAnnouncement(ctx, models.SetRequest{Key: "k2", Secret: "s", ExpiresAt: -1})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, announcetest.MsgInvalidMasterPassword, serviceMessage(t, err))
}

func TestServer_PublicInstance(t *testing.T) {
	srv := announcetest.NewServer(t)
	policy, err := newAdapter(t, srv).GetInstancePolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PolicyPublic, policy)
}

func TestServer_WithoutMessages(t *testing.T) {
	srv := announcetest.NewServer(t, announcetest.WithoutMessages())
	a := newAdapter(t, srv)

	err := a.DeleteAnnouncement(context.Background(), models.DeleteRequest{Key: "missing", Secret: "s"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, serviceMessage(t, err))
}
