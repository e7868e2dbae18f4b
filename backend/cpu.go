// SPDX-License-Identifier: MIT

package backend

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUInfo describes the host as seen by the kernels. gonum's assembly paths
// for dot products and axpy are selected per architecture, so the feature set
// explains performance differences between hosts.
type CPUInfo struct {
	Arch     string   `json:"arch" yaml:"arch"`
	NumCPU   int      `json:"num_cpu" yaml:"num_cpu"`
	Features []string `json:"features" yaml:"features"`
}

// DetectCPU reports the architecture and the SIMD features relevant to float64 kernels.
func DetectCPU() CPUInfo {
	info := CPUInfo{Arch: runtime.GOARCH, NumCPU: runtime.NumCPU()}

	switch runtime.GOARCH {
	case "amd64", "386":
		add := func(ok bool, name string) {
			if ok {
				info.Features = append(info.Features, name)
			}
		}
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		if cpu.ARM64.HasASIMD {
			info.Features = append(info.Features, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			info.Features = append(info.Features, "fphp")
		}
		if cpu.ARM64.HasSVE {
			info.Features = append(info.Features, "sve")
		}
	}

	return info
}
