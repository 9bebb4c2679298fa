package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/scoring"
)

func TestFileEnumBands(t *testing.T) {
	require.Equal(t, 500, scoring.FileEnum.Evaluate(150_000))
	require.Equal(t, 500, scoring.FileEnum.Evaluate(60_000))
	require.Equal(t, 400, scoring.FileEnum.Evaluate(59_999))
	require.Equal(t, 25, scoring.FileEnum.Evaluate(0))
}

func TestRandomReadCappedBelowTableMax(t *testing.T) {
	// the shared latency table's top band is 700 points but random_read's
	// category max_score caps it to 600.
	require.Equal(t, 600, scoring.RandomRead.Evaluate(0.1))
	require.Equal(t, 700, scoring.StorageLatency.Evaluate(0.1)) // storage_latency's own max is 700
}

func TestStorageLatencyUncapped(t *testing.T) {
	require.Equal(t, 700, scoring.StorageLatency.Evaluate(0.1))
	require.Equal(t, 550, scoring.StorageLatency.Evaluate(0.9))
	require.Equal(t, 10, scoring.StorageLatency.Evaluate(51))
}

func TestLowerIsBetterTieBreaksUpperBand(t *testing.T) {
	// exactly on the boundary: ties favor the better (lower-threshold) band
	require.Equal(t, 700, scoring.StorageLatency.Evaluate(0.5))
	require.Equal(t, 550, scoring.StorageLatency.Evaluate(1.0))
}

func TestHigherIsBetterTieBreaksUpperBand(t *testing.T) {
	require.Equal(t, 500, scoring.FileEnum.Evaluate(60_000))
}

func TestStepFunctionClampsToMaxScore(t *testing.T) {
	f := scoring.StepFunction{
		Direction: scoring.HigherIsBetter,
		MaxScore:  10,
		Bands:     []scoring.Band{{100, 999}, {0, 0}},
	}
	require.Equal(t, 10, f.Evaluate(200))
}

func TestStepFunctionMonotoneHigherIsBetter(t *testing.T) {
	prev := -1
	for _, m := range []float64{0, 1000, 6000, 20000, 40000, 70000} {
		got := scoring.FileEnum.Evaluate(m)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestStepFunctionMonotoneLowerIsBetter(t *testing.T) {
	prev := 1_000_000
	for _, m := range []float64{0.1, 0.9, 3, 20, 60} {
		got := scoring.StorageLatency.Evaluate(m)
		require.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestRatingFromPercentage(t *testing.T) {
	cases := []struct {
		pct  float64
		want scoring.Rating
	}{
		{100, scoring.Excellent},
		{90, scoring.Excellent},
		{89.9, scoring.Good},
		{70, scoring.Good},
		{50, scoring.Acceptable},
		{30, scoring.Poor},
		{0, scoring.Inadequate},
	}
	for _, c := range cases {
		require.Equal(t, c.want, scoring.RatingFromPercentage(c.pct), "pct=%v", c.pct)
	}
}

func TestRatingTotalAndMonotone(t *testing.T) {
	prev := scoring.Inadequate
	for pct := 0.0; pct <= 100; pct += 1 {
		r := scoring.RatingFromPercentage(pct)
		require.GreaterOrEqual(t, int(r), int(prev))
		prev = r
	}
}

func TestAllTablesValidate(t *testing.T) {
	tables := []scoring.StepFunction{
		scoring.FileEnum, scoring.RandomRead, scoring.StorageLatency,
		scoring.MetadataOps, scoring.DirTraversal, scoring.LargeSeqRead,
		scoring.SingleThread, scoring.MultiThread, scoring.MixedRCW,
		scoring.SustainedWrite, scoring.MemoryLatency, scoring.ProcessSpawn,
		scoring.ThreadWake, scoring.MemoryBandwidth,
		scoring.AdapterClassification, scoring.Render2D, scoring.Render3D,
		scoring.FrameTimeConsistency, scoring.TextureUpload,
	}
	for i, tb := range tables {
		require.NoError(t, tb.Validate(), "table index %d", i)
	}
}
