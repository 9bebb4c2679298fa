package scratch

// Pattern selects how CreateFile/CreateTree fill file content.
type Pattern int

const (
	// Zero fills files with zero bytes — cheapest to allocate, useful
	// when only file count/size matters (file_enum's tree) and content
	// compressibility would otherwise skew a
	// compute workload that happens to touch the same tree.
	Zero Pattern = iota
	// Random fills files with a seeded pseudo-random byte stream —
	// incompressible, representative of already-compressed project
	// artifacts (random_read, large_seq_read).
	Random
	// Text fills files with seeded pseudo-random printable ASCII —
	// compresses like real source text, used by workloads that read
	// file content back (dir_traversal's first-1KiB read).
	Text
)

const textAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \n"
