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

// Package model holds the plain data types shared by every scaler
// component: the function descriptor (Meta), the Platform-owned
// resource (Slot) and the initialised, assignable unit built from
// the two of them (Instance).
package model

import (
	"time"

	pb "github.com/mycraftmw/scaler/proto"
)

// Meta is a function descriptor, copied out of the wire AssignRequest
// on every Assign. Immutable once stored.
type Meta struct {
	Key           string
	Runtime       string
	MemoryInMb    uint64
	TimeoutInSecs uint64
}

// MetaFromPB copies the wire Meta into the internal representation.
func MetaFromPB(m *pb.Meta) *Meta {
	if m == nil {
		return nil
	}
	return &Meta{
		Key:           m.Key,
		Runtime:       m.Runtime,
		MemoryInMb:    m.MemoryInMb,
		TimeoutInSecs: m.TimeoutInSecs,
	}
}

// SlotResourceConfig is what the scheduler derives from Meta before
// asking the Platform to create a slot.
type SlotResourceConfig struct {
	pb.ResourceConfig
}

// Slot is an opaque Platform-owned resource, tracked only by id.
type Slot struct {
	Id             string
	ResourceConfig *pb.ResourceConfig
}

// Assignment names the instance a caller currently holds; it is the
// token an Idle call uses to find its way back to the Directory.
type Assignment struct {
	RequestID  string
	MetaKey    string
	InstanceID string
}

// Result carries what a caller learned while running on an
// Instance, so Idle knows whether the slot is safe to keep pooling.
type Result struct {
	NeedDestroy bool
	Reason      string
}

// Instance is a Slot that has been initialised for a Meta. It is the
// unit the Idle Pool and the Instance Directory move between them.
type Instance struct {
	Id             string
	Slot           *Slot
	Meta           *Meta
	CreateTimeMs   uint64
	InitDurationMs uint64

	// LastIdleTime is set at birth and refreshed on every Busy->Idle
	// transition; it is the input to the GC sweep's age check.
	LastIdleTime time.Time

	// Busy mirrors directory membership; it exists purely so log
	// lines and Stats() don't need to re-derive it from which map
	// holds the instance.
	Busy bool
}
