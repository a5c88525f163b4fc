/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import "time"

// SampleKind identifies one of the four raw metric sample streams.
type SampleKind string

const (
	SampleKindCPU     SampleKind = "cpu"
	SampleKindMemory  SampleKind = "memory"
	SampleKindDisk    SampleKind = "disk"
	SampleKindNetwork SampleKind = "network"
)

// AllSampleKinds lists every sample stream, in pruning order.
func AllSampleKinds() []SampleKind {
	return []SampleKind{SampleKindCPU, SampleKindMemory, SampleKindDisk, SampleKindNetwork}
}

// CPUSample is one CPU usage reading for a device.
type CPUSample struct {
	DeviceID     string    `json:"device_id"`
	UsagePercent float64   `json:"usage_percent"`
	UserPercent  float64   `json:"user_percent"`
	SysPercent   float64   `json:"sys_percent"`
	IdleSeconds  float64   `json:"idle_seconds"`
	TotalSeconds float64   `json:"total_seconds"`
	Timestamp    time.Time `json:"timestamp"`
}

// MemorySample is one memory usage reading for a device.
type MemorySample struct {
	DeviceID     string    `json:"device_id"`
	UsagePercent float64   `json:"usage_percent"`
	TotalBytes   uint64    `json:"total_bytes"`
	UsedBytes    uint64    `json:"used_bytes"`
	FreeBytes    uint64    `json:"free_bytes"`
	Timestamp    time.Time `json:"timestamp"`
}

// DiskSample is one filesystem usage reading. Collectors emit one sample per
// filesystem per tick.
type DiskSample struct {
	DeviceID     string    `json:"device_id"`
	Filesystem   string    `json:"filesystem"`
	MountPoint   string    `json:"mount_point,omitempty"`
	SizeBytes    int64     `json:"size_bytes"`
	UsedBytes    int64     `json:"used_bytes"`
	UsagePercent float64   `json:"usage_percent"`
	Timestamp    time.Time `json:"timestamp"`
}

// NetworkSample carries per-interface counters. Counters are cumulative since
// interface or process start, not per-interval deltas.
type NetworkSample struct {
	DeviceID        string    `json:"device_id"`
	Interface       string    `json:"interface,omitempty"`
	BytesReceived   int64     `json:"bytes_received"`
	BytesSent       int64     `json:"bytes_sent"`
	PacketsReceived int64     `json:"packets_received"`
	PacketsSent     int64     `json:"packets_sent"`
	ErrorsReceived  int64     `json:"errors_received"`
	ErrorsSent      int64     `json:"errors_sent"`
	Timestamp       time.Time `json:"timestamp"`
}

// NetworkPeriodSummary is the monthly rollup of a device's network samples.
// An all-zero summary is a valid recorded value and distinguishes "no
// traffic" from "never rolled up".
type NetworkPeriodSummary struct {
	TotalBytesReceived     int64     `json:"total_bytes_received"`
	TotalBytesSent         int64     `json:"total_bytes_sent"`
	TotalPacketsReceived   int64     `json:"total_packets_received"`
	TotalPacketsSent       int64     `json:"total_packets_sent"`
	TotalErrorsReceived    int64     `json:"total_errors_received"`
	TotalErrorsSent        int64     `json:"total_errors_sent"`
	AvgBytesReceivedPerSec float64   `json:"avg_bytes_received_per_sec"`
	AvgBytesSentPerSec     float64   `json:"avg_bytes_sent_per_sec"`
	DataPoints             int       `json:"data_points"`
	PeriodStart            time.Time `json:"period_start"`
	PeriodEnd              time.Time `json:"period_end"`
}
