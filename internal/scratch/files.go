package scratch

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// writeChunk is the buffer size CreateFile streams in, so that the
// multi-gigabyte files some workloads need (large_seq_read's 2 GiB,
// sustained_write's 4 GiB) never require a matching in-memory buffer.
const writeChunk = 1 << 20 // 1 MiB

// CreateFile creates a file at rel (relative to the Area's root) of the
// given size, filled per pattern and seed. Parent directories are created
// as needed.
func (a *Area) CreateFile(rel string, size int64, pattern Pattern, seed int64) error {
	full := filepath.Join(a.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("scratch: create parent dir for %q: %w", rel, err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("scratch: create file %q: %w", rel, err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, writeChunk)
	var written int64
	for written < size {
		n := writeChunk
		if remaining := size - written; remaining < int64(n) {
			n = int(remaining)
		}
		fillInto(buf[:n], pattern, rng)
		if _, err := f.Write(buf[:n]); err != nil {
			return fmt.Errorf("scratch: write file %q: %w", rel, err)
		}
		written += int64(n)
	}
	return nil
}

// fillInto fills buf according to pattern, drawing randomness from rng
// when the pattern is not Zero.
func fillInto(buf []byte, pattern Pattern, rng *rand.Rand) {
	switch pattern {
	case Zero:
		for i := range buf {
			buf[i] = 0
		}
	case Random:
		rng.Read(buf)
	case Text:
		for i := range buf {
			buf[i] = textAlphabet[rng.Intn(len(textAlphabet))]
		}
	default:
		panic(fmt.Sprintf("scratch: unknown pattern %d", pattern))
	}
}

// CreateTree populates the scratch area with dirs directories, each
// containing filesPerDir files of fileSize bytes, filled per pattern.
// Directories are named dir-00000.. and files file-00000.. within each,
// matching the flat, predictable layout file_enum/dir_traversal expect to
// enumerate.
func (a *Area) CreateTree(dirs, filesPerDir int, fileSize int64, pattern Pattern, seed int64) error {
	for d := 0; d < dirs; d++ {
		dirRel := fmt.Sprintf("dir-%05d", d)
		if err := os.MkdirAll(filepath.Join(a.root, dirRel), 0o755); err != nil {
			return fmt.Errorf("scratch: create tree dir %q: %w", dirRel, err)
		}
		for f := 0; f < filesPerDir; f++ {
			rel := filepath.Join(dirRel, fmt.Sprintf("file-%05d", f))
			if err := a.CreateFile(rel, fileSize, pattern, seed+int64(d*filesPerDir+f)); err != nil {
				return err
			}
		}
	}
	return nil
}
