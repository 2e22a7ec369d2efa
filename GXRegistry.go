package gxgcf

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"fmt"
	"sort"
	"sync"
)

// GXRegistry maps scheme names to protocol factories.
// It is safe for concurrent use.
type GXRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProtocolFactory
}

// NewGXRegistry returns an empty registry.
func NewGXRegistry() *GXRegistry {
	return &GXRegistry{factories: make(map[string]ProtocolFactory)}
}

// Register adds a factory for scheme.
func (r *GXRegistry) Register(scheme string, factory ProtocolFactory) error {
	if scheme == "" {
		return fmt.Errorf("%w: empty scheme", ErrIllegalArgument)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil factory for scheme %q", ErrIllegalArgument, scheme)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[scheme]; ok {
		return fmt.Errorf("%w: %q", ErrSchemeRegistered, scheme)
	}
	r.factories[scheme] = factory
	return nil
}

// Unregister removes the factory for scheme and reports whether one existed.
func (r *GXRegistry) Unregister(scheme string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.factories[scheme]
	delete(r.factories, scheme)
	return ok
}

// Resolve returns a new handler for the URL scheme.
func (r *GXRegistry) Resolve(url *GXURL) (IGXProtocol, error) {
	r.mu.RLock()
	factory, ok := r.factories[url.Scheme()]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, url.Scheme())
	}
	return factory(), nil
}

// Schemes returns the registered scheme names in sorted order.
func (r *GXRegistry) Schemes() []string {
	r.mu.RLock()
	ret := make([]string, 0, len(r.factories))
	for k := range r.factories {
		ret = append(ret, k)
	}
	r.mu.RUnlock()
	sort.Strings(ret)
	return ret
}
