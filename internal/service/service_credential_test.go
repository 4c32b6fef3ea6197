package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/signpost/internal/crypto"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/mock"
	"github.com/MKhiriev/signpost/internal/store"
	"github.com/MKhiriev/signpost/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCredentialSvc(t *testing.T, ctrl *gomock.Controller) (CredentialService, *mock.MockCredentialRepository, *mock.MockSealer) {
	t.Helper()
	repo := mock.NewMockCredentialRepository(ctrl)
	sealer := mock.NewMockSealer(ctrl)
	return NewCredentialService(repo, sealer, logger.Nop()), repo, sealer
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestCredentialService_Load_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, sealer := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetCredential(ctx, secretCredentialName).Return("sealed-blob", nil),
		sealer.EXPECT().Open("sealed-blob").Return("s3cr3t", nil),
	)

	secret, found, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "s3cr3t", secret)
}

func TestCredentialService_Load_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx, secretCredentialName).Return("", store.ErrCredentialNotFound)

	secret, found, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, secret)
}

func TestCredentialService_Load_StoreErrorIsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	storeErr := errors.New("disk I/O error")
	repo.EXPECT().GetCredential(ctx, secretCredentialName).Return("", storeErr)

	secret, found, err := svc.Load(ctx)
	require.ErrorIs(t, err, storeErr)
	assert.False(t, found)
	assert.Empty(t, secret)
}

func TestCredentialService_Load_UnsealErrorIsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, sealer := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx, secretCredentialName).Return("sealed:v1:garbage", nil)
	sealer.EXPECT().Open("sealed:v1:garbage").Return("", crypto.ErrUnsealFailed)

	_, found, err := svc.Load(ctx)
	require.ErrorIs(t, err, crypto.ErrUnsealFailed)
	assert.False(t, found)
}

func TestCredentialService_Load_EmptyStoredValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, sealer := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCredential(ctx, secretCredentialName).Return("", nil)
	sealer.EXPECT().Open("").Return("", nil)

	_, found, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestCredentialService_Save_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, sealer := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		sealer.EXPECT().Seal("s3cr3t").Return("sealed-blob", nil),
		repo.EXPECT().SaveCredential(ctx, secretCredentialName, "sealed-blob").Return(nil),
	)

	require.NoError(t, svc.Save(ctx, "s3cr3t"))
}

func TestCredentialService_Save_EmptySecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestCredentialSvc(t, ctrl)

	// no repository or sealer calls are expected
	err := svc.Save(context.Background(), "")
	require.ErrorIs(t, err, validators.ErrValidation)
	require.ErrorIs(t, err, validators.ErrEmptySecret)
}

func TestCredentialService_Save_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, sealer := newTestCredentialSvc(t, ctrl)

	sealErr := errors.New("entropy exhausted")
	sealer.EXPECT().Seal("s3cr3t").Return("", sealErr)

	err := svc.Save(context.Background(), "s3cr3t")
	require.ErrorIs(t, err, sealErr)
}

func TestCredentialService_Save_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, sealer := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	sealer.EXPECT().Seal("s3cr3t").Return("sealed-blob", nil)
	repo.EXPECT().SaveCredential(ctx, secretCredentialName, "sealed-blob").Return(store.ErrExecutingStatement)

	err := svc.Save(ctx, "s3cr3t")
	require.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestCredentialService_SaveThenLoad_PlainSealer(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)
	svc := NewCredentialService(repo, crypto.NewSealer(""), logger.Nop())
	ctx := context.Background()

	var stored string
	repo.EXPECT().SaveCredential(ctx, secretCredentialName, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value string) error {
			stored = value
			return nil
		},
	)
	repo.EXPECT().GetCredential(ctx, secretCredentialName).DoAndReturn(
		func(context.Context, string) (string, error) { return stored, nil },
	)

	require.NoError(t, svc.Save(ctx, "s3cr3t"))
	secret, found, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "s3cr3t", secret)
}
