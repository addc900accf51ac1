package mock

import (
	"context"

	"github.com/fwojciec/seosheet"
)

var _ seosheet.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of seosheet.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (m *HostLimiter) Wait(ctx context.Context, host string) error {
	return m.WaitFn(ctx, host)
}
