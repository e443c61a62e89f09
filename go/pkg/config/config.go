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

// Package config loads the scaler's runtime configuration. Precedence,
// lowest to highest: compiled defaults, a YAML file, environment
// variables. CLI flags are applied on top by cmd/scaler.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable named in the scaler's interface contract.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	PlatformAddr string `yaml:"platform_addr"`

	PlatformDialRetryMinInterval time.Duration `yaml:"platform_dial_retry_min_interval"`
	PlatformDialRetryMaxInterval time.Duration `yaml:"platform_dial_retry_max_interval"`

	IdlePoolCapacity     int           `yaml:"idle_pool_capacity"`
	IdleDurationBeforeGC time.Duration `yaml:"idle_duration_before_gc"`
	GCInterval           time.Duration `yaml:"gc_interval"`

	// RctRate weights the exponential moving average kept by the
	// runtime stats tracker: new = rate*old + (1-rate)*sample.
	RctRate float64 `yaml:"rct_rate"`

	MaxConcurrentStreams uint32        `yaml:"max_concurrent_streams"`
	KeepAliveMinTime     time.Duration `yaml:"keepalive_min_time"`

	MetricsNamespace string `yaml:"metrics_namespace"`
	MetricsAddr      string `yaml:"metrics_addr"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr:   ":9001",
		PlatformAddr: "127.0.0.1:50051",

		PlatformDialRetryMinInterval: time.Second,
		PlatformDialRetryMaxInterval: 5 * time.Second,

		IdlePoolCapacity:     5,
		IdleDurationBeforeGC: time.Hour,
		GCInterval:           time.Minute,

		RctRate: 0.9,

		MaxConcurrentStreams: 1000,
		KeepAliveMinTime:     60 * time.Second,

		MetricsNamespace: "scaler",
		MetricsAddr:      ":9090",

		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadFile merges a YAML file on top of Default().
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg in place from SCALER_-prefixed environment
// variables, applied after a config file and before CLI flags.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("SCALER_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SCALER_PLATFORM_ADDR"); v != "" {
		cfg.PlatformAddr = v
	}
	if v := os.Getenv("SCALER_IDLE_POOL_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IdlePoolCapacity = n
		}
	}
	if v := os.Getenv("SCALER_IDLE_DURATION_BEFORE_GC"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.IdleDurationBeforeGC = d
		}
	}
	if v := os.Getenv("SCALER_GC_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.GCInterval = d
		}
	}
	if v := os.Getenv("SCALER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SCALER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("SCALER_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
}
