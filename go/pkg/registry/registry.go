/*
Copyright 2023 The Alibaba Cloud Serverless Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package registry holds a key -> Meta map that is insert-dominant
// and read on every scheduling decision.
package registry

import (
	"sync"

	"github.com/mycraftmw/scaler/go/pkg/model"
)

// Registry maps a function's meta_key to its descriptor. Writes are
// rare relative to reads, so a RWMutex is enough; it is never held
// across an RPC.
type Registry struct {
	mu   sync.RWMutex
	data map[string]*model.Meta
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		data: make(map[string]*model.Meta),
	}
}

// Insert stores meta under meta.Key, last-write-wins. Callers that
// already hold the current Meta for a key (the common Assign path)
// pay only a map write, never a read-modify-write.
func (r *Registry) Insert(meta *model.Meta) {
	r.mu.Lock()
	r.data[meta.Key] = meta
	r.mu.Unlock()
}

// Get looks up meta by key.
func (r *Registry) Get(key string) (*model.Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.data[key]
	return m, ok
}

// Len reports the number of distinct function keys seen so far.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Keys returns every meta_key seen so far, in no particular order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	return keys
}
