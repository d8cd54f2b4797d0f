// Sandbox collaborators for development and tests.
package payments

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SandboxRedirect is an in-memory RedirectProcessor. Orders are confirmed
// immediately on capture; each order can be captured once.
type SandboxRedirect struct {
	mu     sync.Mutex
	orders map[string]struct{}
}

// NewSandboxRedirect constructs an empty sandbox processor.
func NewSandboxRedirect() *SandboxRedirect {
	return &SandboxRedirect{orders: make(map[string]struct{})}
}

// CreateOrder registers an order and returns its id. The approve URL is
// empty: there is no external site to visit in the sandbox.
func (s *SandboxRedirect) CreateOrder(_ context.Context, _ decimal.Decimal, _ string) (*RedirectOrder, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.orders[id] = struct{}{}
	s.mu.Unlock()
	return &RedirectOrder{OrderID: id}, nil
}

// CaptureOrder confirms a previously created order and yields a fresh
// reference token. Capturing an unknown or already-captured order fails
// with ErrUnknownOrder.
func (s *SandboxRedirect) CaptureOrder(_ context.Context, orderID string) (*RedirectCapture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[orderID]; !ok {
		return nil, ErrUnknownOrder
	}
	delete(s.orders, orderID)
	return &RedirectCapture{Reference: uuid.NewString(), Confirmed: true}, nil
}

// SandboxCharger is an in-memory CardCharger for development and tests.
type SandboxCharger struct{}

// CreateIntent fabricates a reference/secret pair without contacting any
// processor.
func (SandboxCharger) CreateIntent(_ context.Context, _ decimal.Decimal, _ string) (*CardIntent, error) {
	ref := "pi_" + uuid.NewString()
	return &CardIntent{Reference: ref, ClientSecret: ref + "_secret"}, nil
}
