package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/catalog"
	"github.com/ravenscale/workbench/internal/workload"
)

func TestAllHas19Workloads(t *testing.T) {
	all := catalog.All()
	require.Len(t, all, 19)
}

func TestMandatoryAndGraphicsPartitionAll(t *testing.T) {
	mandatory := catalog.MandatoryIDs()
	gfx := catalog.GraphicsIDs()
	require.Len(t, mandatory, 14)
	require.Len(t, gfx, 5)
	require.Len(t, catalog.IDs(), len(mandatory)+len(gfx))
}

func TestIDsAreUnique(t *testing.T) {
	ids := catalog.IDs()
	seen := map[string]bool{}
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestLookupPreservesDeclaredOrder(t *testing.T) {
	// Pass ids in reverse order; Lookup must still return them in catalog
	// declared order, not the order requested.
	requested := []string{"multi_thread", "file_enum", "single_thread"}
	got := catalog.Lookup(requested)
	require.Len(t, got, 3)
	require.Equal(t, "file_enum", got[0].ID())
	require.Equal(t, "single_thread", got[1].ID())
	require.Equal(t, "multi_thread", got[2].ID())
}

func TestLookupIgnoresUnknownIDs(t *testing.T) {
	got := catalog.Lookup([]string{"file_enum", "does_not_exist"})
	require.Len(t, got, 1)
	require.Equal(t, "file_enum", got[0].ID())
}

func TestMandatoryIDsExcludeGraphicsCategory(t *testing.T) {
	for _, w := range catalog.All() {
		if w.Category() == workload.Graphics {
			require.NotContains(t, catalog.MandatoryIDs(), w.ID())
		} else {
			require.Contains(t, catalog.MandatoryIDs(), w.ID())
		}
	}
}
