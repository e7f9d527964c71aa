package gateway

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	gatewayport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/gateway"
)

// Registry selects a gateway adapter by checkout method name
type Registry struct {
	adapters map[entity.Gateway]gatewayport.Adapter
}

// NewRegistry indexes adapters by their Name
func NewRegistry(adapters ...gatewayport.Adapter) *Registry {
	r := &Registry{adapters: make(map[entity.Gateway]gatewayport.Adapter, len(adapters))}
	for _, adapter := range adapters {
		r.adapters[adapter.Name()] = adapter
	}
	return r
}

// Resolve returns the adapter for a method name
//
// Possible errors:
// - ErrUnsupportedMethod: If no adapter is registered for the method
func (r *Registry) Resolve(method string) (gatewayport.Adapter, error) {
	adapter, ok := r.adapters[entity.Gateway(strings.ToLower(strings.TrimSpace(method)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedMethod, method)
	}
	return adapter, nil
}

// Methods lists the registered method names in sorted order
func (r *Registry) Methods() []entity.Gateway {
	methods := make([]entity.Gateway, 0, len(r.adapters))
	for name := range r.adapters {
		methods = append(methods, name)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	return methods
}
