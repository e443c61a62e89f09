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

// Package directory tracks the set of instances currently on loan to
// a caller, i.e. not reachable from the idle pool. An instance lives
// in exactly one of the two at any time.
package directory

import (
	"sync"

	"github.com/mycraftmw/scaler/go/pkg/model"
)

// Directory tracks busy instances by id.
type Directory struct {
	mu   sync.RWMutex
	byID map[string]*model.Instance
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{byID: make(map[string]*model.Instance)}
}

// Insert marks inst as busy.
func (d *Directory) Insert(inst *model.Instance) {
	d.mu.Lock()
	inst.Busy = true
	d.byID[inst.Id] = inst
	d.mu.Unlock()
}

// Remove takes inst out of the busy set, returning it and whether it
// was present. A miss means the caller is describing an instance
// this process never handed out, or one already removed (a duplicate
// Idle/DestroySlot).
func (d *Directory) Remove(instanceID string) (*model.Instance, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	inst, ok := d.byID[instanceID]
	if !ok {
		return nil, false
	}
	delete(d.byID, instanceID)
	return inst, true
}

// Get returns the busy instance by id without removing it.
func (d *Directory) Get(instanceID string) (*model.Instance, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	inst, ok := d.byID[instanceID]
	return inst, ok
}

// Len reports how many instances are currently on loan.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}

// CountByKey reports how many busy instances belong to meta_key key.
func (d *Directory) CountByKey(key string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, inst := range d.byID {
		if inst.Meta.Key == key {
			n++
		}
	}
	return n
}
