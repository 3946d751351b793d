package flow

import (
	"context"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/money"
	"shopbot/internal/domain/payment"
)

// requestScope memoizes lookups for one inbound event. It is created per
// event and never shared, so it needs no locking.
type requestScope struct {
	e          *engine
	req        *request
	categories map[int64]*catalog.Category
	providers  []payment.Provider
	tiers      map[string][]money.Cents
}

func newRequestScope(e *engine, req *request) *requestScope {
	return &requestScope{
		e:          e,
		req:        req,
		categories: make(map[int64]*catalog.Category),
		tiers:      make(map[string][]money.Cents),
	}
}

func (s *requestScope) category(ctx context.Context, id int64) (*catalog.Category, error) {
	if c, ok := s.categories[id]; ok {
		return c, nil
	}
	c, err := s.e.catalog.CategoryByID(ctx, s.req.owner.ID, id)
	if err != nil {
		return nil, err
	}
	s.categories[id] = c
	return c, nil
}

// forget drops a cached category after this request changed it.
func (s *requestScope) forget(id int64) {
	delete(s.categories, id)
}

func (s *requestScope) paymentProviders() []payment.Provider {
	if s.providers == nil {
		s.providers = s.e.payments.Providers(s.req.owner.ID)
		if s.providers == nil {
			s.providers = []payment.Provider{}
		}
	}
	return s.providers
}

func (s *requestScope) paymentTiers(provider string) []money.Cents {
	if t, ok := s.tiers[provider]; ok {
		return t
	}
	t := s.e.payments.Tiers(s.req.owner.ID, provider)
	s.tiers[provider] = t
	return t
}

func (s *requestScope) providerLabel(key string) string {
	for _, p := range s.paymentProviders() {
		if p.Key == key {
			return p.Label
		}
	}
	return key
}
