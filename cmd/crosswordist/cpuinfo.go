package main

import (
	"log/slog"

	"github.com/klauspost/cpuid"
)

// logCPUInfo logs a one-time startup diagnostic of the host CPU, mirroring
// the teacher's internal/tool/bench practice of recording the machine shape
// alongside any performance-sensitive run (here, the solver's backtracking
// search).
func logCPUInfo(log *slog.Logger) {
	log.Info("cpu detected",
		"brand", cpuid.CPU.BrandName,
		"physical_cores", cpuid.CPU.PhysicalCores,
		"logical_cores", cpuid.CPU.LogicalCores,
		"avx2", cpuid.CPU.AVX2(),
		"sse2", cpuid.CPU.SSE2(),
	)
}
