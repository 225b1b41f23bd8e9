// Package sysinfo provides a built-in benchmark that samples host CPU,
// memory, and load statistics. It doubles as the reference implementation of
// the plugin lifecycle contract.
package sysinfo

import (
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/mnmehta/benchmark-wrapper/pkg/benchmark"
	"github.com/mnmehta/benchmark-wrapper/pkg/config"
	"github.com/mnmehta/benchmark-wrapper/pkg/errors"
	"github.com/mnmehta/benchmark-wrapper/pkg/logger"
	"github.com/mnmehta/benchmark-wrapper/pkg/registry"
)

const toolName = "sysinfo"

func init() {
	registry.MustRegister(toolName, New)
}

// parseSamples parses the --samples flag into a positive int
func parseSamples(raw string) (interface{}, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil, errors.NewParse("samples must be a positive integer: " + raw)
	}
	return n, nil
}

// parseInterval parses the --interval flag into a duration
func parseInterval(raw string) (interface{}, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, errors.NewParse("invalid sample interval: " + raw)
	}
	return d, nil
}

// Sysinfo samples host statistics through gopsutil
type Sysinfo struct {
	*benchmark.Base
	logger   *zap.Logger
	hostInfo *host.InfoStat
}

// New creates a sysinfo benchmark instance
func New() (benchmark.Benchmark, error) {
	base, err := benchmark.NewBase(toolName,
		config.Argument{
			Flags:     []string{"-s", "--samples"},
			Dest:      "samples",
			Help:      "Number of samples to collect",
			Default:   1,
			Transform: parseSamples,
		},
		config.Argument{
			Flags:     []string{"--interval"},
			Dest:      "interval",
			Help:      "Pause between samples, e.g. 5s",
			Default:   time.Second,
			Transform: parseInterval,
		},
	)
	if err != nil {
		return nil, err
	}
	return &Sysinfo{
		Base:   base,
		logger: logger.ForBenchmark(toolName),
	}, nil
}

// Setup probes the host; a probe failure aborts the run
func (s *Sysinfo) Setup() bool {
	info, err := host.Info()
	if err != nil {
		s.logger.Error("failed to probe host", zap.Error(err))
		return false
	}
	s.hostInfo = info
	return true
}

// Collect samples host statistics, yielding one result per sample
func (s *Sysinfo) Collect() <-chan benchmark.Result {
	samples := s.Config().Get("samples").(int)
	interval := s.Config().Get("interval").(time.Duration)

	out := make(chan benchmark.Result)
	go func() {
		defer close(out)
		for i := 0; i < samples; i++ {
			if i > 0 {
				time.Sleep(interval)
			}
			out <- s.sample(i)
		}
	}()
	return out
}

// sample gathers one snapshot of host statistics
func (s *Sysinfo) sample(index int) benchmark.Result {
	data := map[string]interface{}{
		"hostname":       s.hostInfo.Hostname,
		"os":             s.hostInfo.OS,
		"platform":       s.hostInfo.Platform,
		"kernel_version": s.hostInfo.KernelVersion,
		"uptime_seconds": s.hostInfo.Uptime,
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		data["cpu_percent"] = percents[0]
	}
	if counts, err := cpu.Counts(true); err == nil {
		data["cpu_count"] = counts
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		data["mem_total_bytes"] = vm.Total
		data["mem_used_percent"] = vm.UsedPercent
	}
	if avg, err := load.Avg(); err == nil {
		data["load1"] = avg.Load1
		data["load5"] = avg.Load5
		data["load15"] = avg.Load15
	}

	cfg := map[string]interface{}{
		"samples":  s.Config().Get("samples"),
		"interval": s.Config().Get("interval").(time.Duration).String(),
	}

	return s.NewResult(data, cfg, "sample-"+strconv.Itoa(index))
}

// Cleanup has nothing to tear down
func (s *Sysinfo) Cleanup() bool {
	return true
}
