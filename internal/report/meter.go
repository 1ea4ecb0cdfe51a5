// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Meter measures the resource usage of the running process. The production
// implementation reads the current process; tests inject fakes.
type Meter interface {
	// CPUPercent returns CPU utilisation since the previous call. The first
	// call establishes the baseline and reads as 0.
	CPUPercent() (float64, error)

	// RSS returns the resident set size in bytes.
	RSS() (uint64, error)
}

// ProcessMeter is a Meter backed by gopsutil for the current process.
type ProcessMeter struct {
	proc *process.Process
}

// NewProcessMeter returns a Meter for the calling process.
func NewProcessMeter() (*ProcessMeter, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("inspecting process %d: %w", os.Getpid(), err)
	}
	return &ProcessMeter{proc: p}, nil
}

func (m *ProcessMeter) CPUPercent() (float64, error) {
	return m.proc.Percent(0)
}

func (m *ProcessMeter) RSS() (uint64, error) {
	mi, err := m.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mi.RSS, nil
}

// NopMeter reports zero for everything. It stands in when the process cannot
// be inspected.
type NopMeter struct{}

func (NopMeter) CPUPercent() (float64, error) { return 0, nil }
func (NopMeter) RSS() (uint64, error)         { return 0, nil }
