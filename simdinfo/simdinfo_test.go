package simdinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticDeterministic(t *testing.T) {
	require.Equal(t, Static(), Static())
}

func TestRuntimeCacheStable(t *testing.T) {
	first := Runtime()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Runtime())
	}
}

func TestRuntimeAcrossGoroutines(t *testing.T) {
	// Capabilities are a property of the processor, not of the calling
	// goroutine; concurrent callers must observe the same record.
	first := Runtime()
	results := make(chan Info, 8)
	for i := 0; i < 8; i++ {
		go func() { results <- Runtime() }()
	}
	for i := 0; i < 8; i++ {
		require.Equal(t, first, <-results)
	}
}

func TestStaticIsSubsetOfRuntime(t *testing.T) {
	// A binary only runs on hardware meeting its build baseline, so every
	// statically guaranteed flag must also be probed at runtime.
	st, rt := Static(), Runtime()
	for _, f := range []struct {
		name           string
		static, actual bool
	}{
		{"avx", st.HasAVX, rt.HasAVX},
		{"avx2", st.HasAVX2, rt.HasAVX2},
		{"fma", st.HasFMA, rt.HasFMA},
		{"f16c", st.HasF16C, rt.HasF16C},
		{"avx512f", st.HasAVX512F, rt.HasAVX512F},
		{"avx512dq", st.HasAVX512DQ, rt.HasAVX512DQ},
		{"neon", st.HasNEON, rt.HasNEON},
		{"neonfma", st.HasNEONFMA, rt.HasNEONFMA},
	} {
		if f.static {
			require.True(t, f.actual, "flag %s guaranteed by build but not probed", f.name)
		}
	}
}

func TestOverride(t *testing.T) {
	forced := Info{HasNEON: true, HasSVE: true}
	SetOverride(forced)
	defer ClearOverride()
	require.Equal(t, forced, Runtime())

	ClearOverride()
	require.Equal(t, Runtime(), Runtime())
}

func TestInfoString(t *testing.T) {
	require.Equal(t, "none", Info{}.String())
	require.Equal(t, "avx2+fma", Info{HasAVX2: true, HasFMA: true}.String())
	require.Equal(t, "neon+sve2", Info{HasNEON: true, HasSVE2: true}.String())
}
