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

import "errors"

// Sentinel errors returned by the core. The gRPC transport (package
// server) is the only place these get translated into status codes;
// the core itself never imports grpc/codes.
var (
	ErrMetaRequired       = errors.New("scaler: meta is required")
	ErrAssignmentRequired = errors.New("scaler: assignment is required")
	ErrInstanceNotFound   = errors.New("scaler: instance not found in directory")
	ErrPoolClosed         = errors.New("scaler: idle pool channel closed")
)
