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

// Package metrics wires the scaler's Prometheus collectors. Init
// must be called once at process startup before any Observe/Set
// call; every recorder nil-guards so packages that import metrics
// but run in a test binary that never called Init don't panic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every collector the scaler exposes.
type Metrics struct {
	registry *prometheus.Registry

	platformRPCDuration *prometheus.HistogramVec
	platformRPCErrors   *prometheus.CounterVec

	assignTotal       *prometheus.CounterVec
	assignDuration    *prometheus.HistogramVec
	idleTotal         *prometheus.CounterVec
	coldStartTotal    *prometheus.CounterVec
	instancesCreated  *prometheus.CounterVec
	instancesDestroyed *prometheus.CounterVec

	idlePoolSize   *prometheus.GaugeVec
	busyInstances  *prometheus.GaugeVec
	waitingAssigns *prometheus.GaugeVec
}

// Fixed taxonomy for the instances_destroyed_total "reason" label.
// ObserveInstanceDestroyed must only ever be called with one of
// these; a client-supplied free-form reason belongs in the
// DestroySlot RPC argument and log line, never in a label value.
const (
	ReasonCallerRequested = "caller_requested"
	ReasonPoolFull        = "pool_full"
	ReasonGCSweep         = "gc_sweep"
	ReasonInitFailed      = "init_failed"
)

var m *Metrics

// Init builds the collector set under namespace and registers it
// with a fresh registry, replacing any previously initialised set.
func Init(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	nm := &Metrics{
		registry: reg,
		platformRPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "platform_client",
			Name:      "rpc_duration_seconds",
			Help:      "Latency of Platform Client RPCs by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		platformRPCErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "platform_client",
			Name:      "rpc_errors_total",
			Help:      "Platform Client RPCs that returned an error.",
		}, []string{"method"}),
		assignTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assign_total",
			Help:      "Assign calls by outcome (idle_hit, cold_start, timeout, error).",
		}, []string{"outcome"}),
		assignDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assign_duration_seconds",
			Help:      "Assign call latency by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		idleTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idle_total",
			Help:      "Idle calls by outcome (pooled, destroyed, not_found).",
		}, []string{"outcome"}),
		coldStartTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cold_start_total",
			Help:      "Instances created on the Assign path because the pool was empty.",
		}, []string{"meta_key"}),
		instancesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_created_total",
			Help:      "Instances successfully created and initialised.",
		}, []string{"meta_key"}),
		instancesDestroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_destroyed_total",
			Help:      "Instances destroyed, by reason.",
		}, []string{"meta_key", "reason"}),
		idlePoolSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "idle_pool_size",
			Help:      "Instances currently idle, per key.",
		}, []string{"meta_key"}),
		busyInstances: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "busy_instances",
			Help:      "Instances currently on loan, per key.",
		}, []string{"meta_key"}),
		waitingAssigns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "waiting_assigns",
			Help:      "Assign calls currently blocked waiting for an instance, per key.",
		}, []string{"meta_key"}),
	}

	reg.MustRegister(
		nm.platformRPCDuration,
		nm.platformRPCErrors,
		nm.assignTotal,
		nm.assignDuration,
		nm.idleTotal,
		nm.coldStartTotal,
		nm.instancesCreated,
		nm.instancesDestroyed,
		nm.idlePoolSize,
		nm.busyInstances,
		nm.waitingAssigns,
	)

	m = nm
	return nm
}

// Handler returns the HTTP handler serving the registered
// collectors, for mounting on the metrics listener.
func Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObservePlatformRPC records the outcome of one Platform Client RPC.
func ObservePlatformRPC(method string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.platformRPCDuration.WithLabelValues(method).Observe(d.Seconds())
	if err != nil {
		m.platformRPCErrors.WithLabelValues(method).Inc()
	}
}

// ObserveAssign records an Assign call's outcome and latency.
// outcome is one of "idle_hit", "cold_start", "timeout" or "error".
func ObserveAssign(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.assignTotal.WithLabelValues(outcome).Inc()
	m.assignDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveIdle records an Idle call's outcome: "pooled", "destroyed"
// or "not_found".
func ObserveIdle(outcome string) {
	if m == nil {
		return
	}
	m.idleTotal.WithLabelValues(outcome).Inc()
}

// ObserveColdStart records that metaKey's pool was empty on Assign
// and a new instance had to be scheduled.
func ObserveColdStart(metaKey string) {
	if m == nil {
		return
	}
	m.coldStartTotal.WithLabelValues(metaKey).Inc()
}

// ObserveInstanceCreated records a successful create+init.
func ObserveInstanceCreated(metaKey string) {
	if m == nil {
		return
	}
	m.instancesCreated.WithLabelValues(metaKey).Inc()
}

// ObserveInstanceDestroyed records a slot teardown. reason must be
// one of the Reason* constants, not a caller-supplied string.
func ObserveInstanceDestroyed(metaKey, reason string) {
	if m == nil {
		return
	}
	m.instancesDestroyed.WithLabelValues(metaKey, reason).Inc()
}

// SetIdlePoolSize reports the current idle count for metaKey.
func SetIdlePoolSize(metaKey string, n int) {
	if m == nil {
		return
	}
	m.idlePoolSize.WithLabelValues(metaKey).Set(float64(n))
}

// SetBusyInstances reports the current busy count for metaKey.
func SetBusyInstances(metaKey string, n int) {
	if m == nil {
		return
	}
	m.busyInstances.WithLabelValues(metaKey).Set(float64(n))
}

// SetWaitingAssigns reports how many Assign calls are currently
// blocked waiting for metaKey.
func SetWaitingAssigns(metaKey string, n int) {
	if m == nil {
		return
	}
	m.waitingAssigns.WithLabelValues(metaKey).Set(float64(n))
}
