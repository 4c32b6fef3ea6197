package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/signpost/internal/adapter"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/mock"
	"github.com/MKhiriev/signpost/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPolicyResolver_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		policy models.InstancePolicy
		err    error
		want   models.InstancePolicy
	}{
		{name: "public", policy: models.PolicyPublic, want: models.PolicyPublic},
		{name: "private", policy: models.PolicyPrivate, want: models.PolicyPrivate},
		{name: "transport failure", err: adapter.ErrTransport, want: models.PolicyPublic},
		{name: "malformed response", err: adapter.ErrMalformedResponse, want: models.PolicyPublic},
		{name: "server error", policy: models.PolicyPrivate, err: errors.New("http 500"), want: models.PolicyPublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serviceAdapter := mock.NewMockServiceAdapter(ctrl)
			serviceAdapter.EXPECT().GetInstancePolicy(gomock.Any()).Return(tt.policy, tt.err)

			resolver := NewPolicyResolver(serviceAdapter, logger.Nop())
			assert.Equal(t, tt.want, resolver.Resolve(context.Background()))
		})
	}
}

func TestPolicyResolver_Resolve_Memoised(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceAdapter := mock.NewMockServiceAdapter(ctrl)
	serviceAdapter.EXPECT().GetInstancePolicy(gomock.Any()).Return(models.PolicyPrivate, nil).Times(1)

	resolver := NewPolicyResolver(serviceAdapter, logger.Nop())
	ctx := context.Background()

	for range 3 {
		assert.Equal(t, models.PolicyPrivate, resolver.Resolve(ctx))
	}
}

func TestPolicyResolver_Resolve_FailureIsMemoised(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceAdapter := mock.NewMockServiceAdapter(ctrl)
	serviceAdapter.EXPECT().GetInstancePolicy(gomock.Any()).Return(models.PolicyPublic, adapter.ErrTransport).Times(1)

	resolver := NewPolicyResolver(serviceAdapter, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, models.PolicyPublic, resolver.Resolve(ctx))
	assert.Equal(t, models.PolicyPublic, resolver.Resolve(ctx))
}

func TestPolicyResolver_Resolve_ConcurrentCallersShareOneRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceAdapter := mock.NewMockServiceAdapter(ctrl)
	serviceAdapter.EXPECT().GetInstancePolicy(gomock.Any()).Return(models.PolicyPrivate, nil).Times(1)

	resolver := NewPolicyResolver(serviceAdapter, logger.Nop())

	var wg sync.WaitGroup
	results := make([]models.InstancePolicy, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = resolver.Resolve(context.Background())
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, models.PolicyPrivate, got)
	}
}
