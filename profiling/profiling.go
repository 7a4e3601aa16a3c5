// Package profiling selects a profiler at build time via build tags
// (profiling_cpu, profiling_mem, profiling_block, profiling_live). The
// default build profiles nothing.
package profiling

// Stopper provides a Stop() method
type Stopper interface {
	Stop()
}

// NopStopper does nothing
type NopStopper struct{}

// Stop implements Stopper
func (n NopStopper) Stop() {}
