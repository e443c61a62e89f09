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

// Package idlepool holds, per meta_key, a bounded buffer of idle
// instances ready for immediate reuse. A Go channel is both the
// buffer and the rendezvous point between Idle (producer) and a
// blocked Assign (consumer), so a waiter is served the moment an
// instance is put back without a separate wakeup step.
package idlepool

import (
	"context"
	"sync"

	"github.com/mycraftmw/scaler/go/pkg/model"
)

// DefaultCapacity is K, the number of idle instances kept per key
// before Idle must destroy the slot instead of pooling it.
const DefaultCapacity = 5

// Pool holds one bounded channel per meta_key.
type Pool struct {
	mu       sync.Mutex
	capacity int
	lanes    map[string]chan *model.Instance
}

// New returns a Pool where every key's lane holds at most capacity
// idle instances. A non-positive capacity is replaced by
// DefaultCapacity.
func New(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		capacity: capacity,
		lanes:    make(map[string]chan *model.Instance),
	}
}

func (p *Pool) lane(key string) chan *model.Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.lanes[key]
	if !ok {
		l = make(chan *model.Instance, p.capacity)
		p.lanes[key] = l
	}
	return l
}

// TryTake removes an idle instance for key without blocking. It
// reports false if the lane is empty.
func (p *Pool) TryTake(key string) (*model.Instance, bool) {
	select {
	case inst := <-p.lane(key):
		return inst, true
	default:
		return nil, false
	}
}

// Take blocks until an instance is available for key, ctx is
// cancelled, or ctx's deadline passes. Multiple blocked callers for
// the same key are served in the order the runtime wakes their
// channel receive, which for a single unbuffered-style handoff is
// FIFO.
func (p *Pool) Take(ctx context.Context, key string) (*model.Instance, error) {
	select {
	case inst := <-p.lane(key):
		return inst, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Put deposits inst into its key's lane, blocking if the lane is
// currently full until space frees up or ctx is cancelled. Only the
// Scheduler uses this: a pre-warm task that outpaces demand is
// expected to stall here rather than overshoot the pool's capacity.
func (p *Pool) Put(ctx context.Context, inst *model.Instance) error {
	select {
	case p.lane(inst.Meta.Key) <- inst:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPut returns inst to its key's lane without blocking. It reports
// false if the lane is already at capacity; the caller must then
// destroy the slot instead.
func (p *Pool) TryPut(inst *model.Instance) bool {
	select {
	case p.lane(inst.Meta.Key) <- inst:
		return true
	default:
		return false
	}
}

// Len reports how many instances are currently idle for key.
func (p *Pool) Len(key string) int {
	return len(p.lane(key))
}

// Cap returns the configured per-key capacity.
func (p *Pool) Cap() int {
	return p.capacity
}

// Drain removes and returns every instance currently idle for key,
// leaving the lane empty. Used by the GC sweep to inspect candidates
// for removal without holding them out of circulation longer than
// necessary.
func (p *Pool) Drain(key string) []*model.Instance {
	l := p.lane(key)
	var out []*model.Instance
	for {
		select {
		case inst := <-l:
			out = append(out, inst)
		default:
			return out
		}
	}
}
