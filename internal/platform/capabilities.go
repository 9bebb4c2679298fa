// Package platform gathers the small set of host capability probes the
// core needs but does not own: whether a display adapter is usable,
// whether the page cache can be dropped between repeats, whether a
// durable-sync syscall is available, plus a preflight free-space check
// and a generic subprocess execution helper shared by several workloads.
package platform

// Capabilities is the external capability provider named in spec §6. A
// host passes its own implementation (querying real hardware/OS state);
// Default provides a conservative, best-effort implementation for
// platforms where probing is cheap to do from the core itself.
type Capabilities interface {
	// HasDisplayAdapter reports whether a usable display adapter is
	// available, gating the optional Graphics category.
	HasDisplayAdapter() bool
	// CanDropFileCache reports whether the host can ask the OS to drop
	// its page cache for the scratch filesystem between repetitions.
	// large_seq_read checks it between repeats: when true it does
	// nothing further, when false it strides through a reused 16 MiB
	// buffer; neither path drops or evicts the page cache.
	CanDropFileCache() bool
	// DurableSyncSupported reports whether a durable-sync operation
	// (fsync/fdatasync or platform equivalent) is available.
	// sustained_write calls it every 256 MiB window; when false it
	// treats the window boundary as a no-op sync point.
	DurableSyncSupported() bool
}

// NoCapabilities is the zero-effort Capabilities implementation: every
// probe reports false/unsupported. It is the safe default for
// environments (CI, containers) where none of the optional capabilities
// can be assumed.
type NoCapabilities struct{}

func (NoCapabilities) HasDisplayAdapter() bool     { return false }
func (NoCapabilities) CanDropFileCache() bool      { return false }
func (NoCapabilities) DurableSyncSupported() bool  { return false }
