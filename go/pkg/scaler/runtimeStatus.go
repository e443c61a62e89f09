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

package scaler

import (
	"container/list"
	"sync"
	"time"
)

// RuntimeStatus tracks a rolling exponential moving average of
// Assign round-trip time and the current/maximum observed
// concurrent in-flight Assign count.
type RuntimeStatus struct {
	requestStart   map[string]time.Time
	requestStartMu sync.Mutex
	requestCost    time.Duration
	rctRate        float64

	inFlight      *list.List
	inFlightMu    sync.Mutex
	maxConcurrent int64
}

// NewRuntimeStatus returns a tracker weighted by rctRate: each new
// sample contributes (1-rctRate) of the new rolling average.
func NewRuntimeStatus(rctRate float64) *RuntimeStatus {
	return &RuntimeStatus{
		requestStart: make(map[string]time.Time),
		rctRate:      rctRate,
		inFlight:     list.New(),
	}
}

// AssignStart records that an Assign began at t and refreshes the
// concurrent in-flight count, pruning entries older than the rolling
// average cost (a proxy for "no longer in flight").
func (r *RuntimeStatus) AssignStart(t time.Time) {
	costTime := r.AvgRequestCost()
	r.inFlightMu.Lock()
	defer r.inFlightMu.Unlock()
	r.inFlight.PushBack(t)
	for element := r.inFlight.Front(); element != nil; {
		next := element.Next()
		if costTime > 0 && time.Since(element.Value.(time.Time)) > costTime {
			r.inFlight.Remove(element)
		}
		element = next
	}
	if n := int64(r.inFlight.Len()); n > r.maxConcurrent {
		r.maxConcurrent = n
	}
}

// AssignReturn marks the moment requestID's Assign call returned an
// instance to its caller; that moment is the baseline IdleStart
// measures against to learn how long the instance was actually used.
func (r *RuntimeStatus) AssignReturn(requestID string) {
	r.requestStartMu.Lock()
	defer r.requestStartMu.Unlock()
	r.requestStart[requestID] = time.Now()
}

// IdleStart is called when the Idle handler fires for requestID; it
// folds the Assign-to-Idle interval into the rolling average as the
// measure of a full request's usage cost.
func (r *RuntimeStatus) IdleStart(requestID string) {
	r.requestStartMu.Lock()
	defer r.requestStartMu.Unlock()
	start, ok := r.requestStart[requestID]
	if !ok {
		return
	}
	delete(r.requestStart, requestID)
	r.rollIn(time.Since(start))
}

func (r *RuntimeStatus) rollIn(sample time.Duration) {
	if r.requestCost == 0 {
		r.requestCost = sample
		return
	}
	r.requestCost = time.Duration(r.rctRate*float64(r.requestCost) + (1-r.rctRate)*float64(sample))
}

// AvgRequestCost returns the current rolling average.
func (r *RuntimeStatus) AvgRequestCost() time.Duration {
	r.requestStartMu.Lock()
	defer r.requestStartMu.Unlock()
	return r.requestCost
}

// MaxConcurrentRequests returns the highest in-flight Assign count
// observed so far.
func (r *RuntimeStatus) MaxConcurrentRequests() int64 {
	r.inFlightMu.Lock()
	defer r.inFlightMu.Unlock()
	return r.maxConcurrent
}
