// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Policy guards a handler. It either calls next or writes a response itself.
type Policy func(next http.Handler) http.Handler

// Registry holds policies keyed by lowercase name.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Policy)}
}

// Register adds p under the lowercased name.
func (r *Registry) Register(name string, p Policy) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || p == nil {
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePolicy, key)
	}
	r.policies[key] = p
	return nil
}

// Lookup finds a policy by name, ignoring case.
func (r *Registry) Lookup(name string) (Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[strings.ToLower(name)]
	return p, ok
}

// Names returns registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Middleware returns the middleware enforcing the named policy. An empty
// name calls straight through. The name is resolved once, here, so an
// unknown policy surfaces at startup rather than on the first request.
func Middleware(name string, r *Registry) (func(http.Handler) http.Handler, error) {
	if strings.TrimSpace(name) == "" {
		return passthrough, nil
	}

	p, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %s)", ErrUnknownPolicy, strings.ToLower(name), strings.Join(r.Names(), ", "))
	}
	return p, nil
}

func passthrough(next http.Handler) http.Handler {
	return next
}
