package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/signpost/internal/adapter"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/models"
)

type policyResolver struct {
	adapter adapter.ServiceAdapter
	logger  *logger.Logger

	mu       sync.Mutex
	resolved bool
	policy   models.InstancePolicy
}

func NewPolicyResolver(serviceAdapter adapter.ServiceAdapter, logger *logger.Logger) PolicyResolver {
	return &policyResolver{adapter: serviceAdapter, logger: logger}
}

// Resolve implements [PolicyResolver]. Concurrent first calls share a single
// request.
func (p *policyResolver) Resolve(ctx context.Context) models.InstancePolicy {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolved {
		return p.policy
	}

	policy, err := p.adapter.GetInstancePolicy(ctx)
	if err != nil {
		// the service enforces the real policy; this only decides whether
		// the master password field is shown
		p.logger.Warn().Err(err).Str("func", "policyResolver.Resolve").Msg("instance policy unavailable, assuming public")
		policy = models.PolicyPublic
	}

	p.policy = policy
	p.resolved = true
	p.logger.Debug().Str("policy", policy.String()).Msg("instance policy resolved")

	return policy
}
