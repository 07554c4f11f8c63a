package vdot

import (
	"math"
	"math/rand"
	"testing"
)

// testKernels lists every kernel body with its vector width so the whole
// set can be exercised regardless of which candidates the build registers.
var testKernels = []struct {
	name  string
	width int
	impl  func(a, b []float32) float32
}{
	{"scalar", 1, dotScalar},
	{"neon", neonLanes, dotNEON},
	{"sve", 16, dotSVE},
	{"avx2", avx2Lanes, dotAVX2},
	{"avx512", avx512Lanes, dotAVX512},
}

// ramp returns [0, 1, 2, ..., n-1].
func ramp(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(i)
	}
	return v
}

func randVec(n int, rng *rand.Rand) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}

// dotExact computes the reference result in float64.
func dotExact(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func requireClose(t *testing.T, want float64, got float32, rel float64) {
	t.Helper()
	diff := math.Abs(float64(got) - want)
	tol := rel * math.Max(math.Abs(want), 1)
	if diff > tol {
		t.Fatalf("got %v, want %v (diff %g > tol %g)", got, want, diff, tol)
	}
}

// sumOfSquares is n(n-1)(2n-1)/6, the exact value of dot(ramp, ramp).
func sumOfSquares(n int) float64 {
	nf := float64(n)
	return nf * (nf - 1) * (2*nf - 1) / 6
}

func TestKernelsClosedForm(t *testing.T) {
	for _, k := range testKernels {
		t.Run(k.name, func(t *testing.T) {
			for _, n := range []int{1, 2, 7, 100, 1000, 10000} {
				v := ramp(n)
				got := k.impl(v, v)
				requireClose(t, sumOfSquares(n), got, 1e-3)
			}
		})
	}
}

func TestKernelsEmptyInput(t *testing.T) {
	for _, k := range testKernels {
		t.Run(k.name, func(t *testing.T) {
			if got := k.impl(nil, nil); got != 0 {
				t.Fatalf("nil input: got %v, want exactly 0", got)
			}
			if got := k.impl([]float32{}, []float32{}); got != 0 {
				t.Fatalf("empty input: got %v, want exactly 0", got)
			}
		})
	}
}

func TestKernelsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := randVec(1003, rng)
	b := randVec(1003, rng)
	for _, k := range testKernels {
		t.Run(k.name, func(t *testing.T) {
			first := k.impl(a, b)
			for i := 0; i < 5; i++ {
				if again := k.impl(a, b); math.Float32bits(again) != math.Float32bits(first) {
					t.Fatalf("call %d: got %v, want bit-identical %v", i, again, first)
				}
			}
		})
	}
}

// TestKernelsTailBoundaries checks every kernel just under, exactly at,
// and just over multiples of its vector width against the float64
// reference.
func TestKernelsTailBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, k := range testKernels {
		t.Run(k.name, func(t *testing.T) {
			w := k.width
			for _, n := range []int{w - 1, w, w + 1, 2*w - 1, 2 * w, 2*w + 1} {
				if n < 0 {
					continue
				}
				a := randVec(n, rng)
				b := randVec(n, rng)
				requireClose(t, dotExact(a, b), k.impl(a, b), 1e-4)

				// The scalar reference must agree too, in both directions.
				ref := dotScalar(a, b)
				diff := math.Abs(float64(k.impl(a, b) - ref))
				if diff > 1e-3*math.Max(math.Abs(float64(ref)), 1) {
					t.Fatalf("n=%d: kernel %v, scalar reference %v", n, k.impl(a, b), ref)
				}
			}
		})
	}
}

func TestKernelsMismatchedLengths(t *testing.T) {
	a := ramp(40)
	b := ramp(25)
	want := sumOfSquares(25)
	for _, k := range testKernels {
		t.Run(k.name, func(t *testing.T) {
			requireClose(t, want, k.impl(a, b), 1e-4)
			requireClose(t, want, k.impl(b, a), 1e-4)
		})
	}
}

func TestCrossKernelAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randVec(1000, rng)
	b := randVec(1000, rng)
	want := dotExact(a, b)
	for _, k := range testKernels {
		t.Run(k.name, func(t *testing.T) {
			// Summation order differs per kernel, so agreement is within
			// accumulated float32 rounding, not exact.
			requireClose(t, want, k.impl(a, b), 1e-3)
		})
	}
}

// TestSVEWidthIndependence varies the emulated scalable vector length;
// the predicate loop must give equivalent results at every width.
func TestSVEWidthIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := randVec(517, rng)
	b := randVec(517, rng)
	want := dotExact(a, b)

	saved := sveLanes
	defer func() { sveLanes = saved }()

	for _, w := range []int{1, 3, 4, 8, 16, 64} {
		sveLanes = w
		requireClose(t, want, dotSVE(a, b), 1e-4)
	}
}

func TestDotF32EndToEnd(t *testing.T) {
	const n = 1000
	v := ramp(n)
	got := DotF32(v, v)

	// 0² + 1² + ... + 999² = 1000*999*1999/6.
	const want = 332833500.0
	if diff := math.Abs(float64(got) - want); diff > 1e-3*want {
		t.Fatalf("got %v, want %v within 0.1%%", got, want)
	}

	if alias := Dot(v, v); math.Float32bits(alias) != math.Float32bits(got) {
		t.Fatalf("Dot alias diverged: %v vs %v", alias, got)
	}
}

// TestCompensationAccuracy feeds the compensated kernels a sum that
// plain float32 accumulation gets visibly wrong.
func TestCompensationAccuracy(t *testing.T) {
	// 1 followed by many tiny values: naive summation loses the tail.
	n := 1 << 16
	a := make([]float32, n)
	b := make([]float32, n)
	a[0], b[0] = 1, 1
	for i := 1; i < n; i++ {
		a[i] = 1e-4
		b[i] = 1e-4
	}
	want := dotExact(a, b)

	for _, k := range testKernels {
		if k.name == "avx512" {
			// The fused path deliberately drops compensation.
			continue
		}
		t.Run(k.name, func(t *testing.T) {
			requireClose(t, want, k.impl(a, b), 1e-5)
		})
	}
}

func BenchmarkKernels(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	x := randVec(4096, rng)
	y := randVec(4096, rng)
	for _, k := range testKernels {
		b.Run(k.name, func(b *testing.B) {
			b.SetBytes(int64(len(x)) * 4 * 2)
			var sink float32
			for i := 0; i < b.N; i++ {
				sink = k.impl(x, y)
			}
			_ = sink
		})
	}
}

func BenchmarkDotF32(b *testing.B) {
	rng := rand.New(rand.NewSource(6))
	x := randVec(4096, rng)
	y := randVec(4096, rng)
	b.SetBytes(int64(len(x)) * 4 * 2)
	var sink float32
	for i := 0; i < b.N; i++ {
		sink = DotF32(x, y)
	}
	_ = sink
}
