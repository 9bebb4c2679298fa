package responsiveness

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// physicalThreadCountResponsiveness prefers the host's physical core
// count over its logical count, matching build.physicalThreadCount's
// reasoning for sizing a worker pool to hardware threads rather than
// hyperthreaded logical cores.
func physicalThreadCountResponsiveness() int {
	if cpuid.CPU.PhysicalCores > 0 {
		return cpuid.CPU.PhysicalCores
	}
	return runtime.NumCPU()
}
