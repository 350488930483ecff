package filter

import (
	"math"

	"github.com/inkforge/paintcore/internal/cache"
)

// boxSizeCache caches the three Kovesi box-pass widths derived from a
// quantized sigma, avoiding recomputation across tiles processed with the
// same blur radius (the common case: one filter invocation, many tiles).
//
// This repurposes the shared generic cache type (unused anywhere in the
// teacher tree) for a genuinely hot, small, derivable-but-worth-caching
// computation.
var boxSizeCache = cache.New[float64, [3]int](256)

// quantizeSigma rounds sigma to a 0.01 grid so the cache key is stable
// across floating-point jitter in caller-supplied parameters.
func quantizeSigma(sigma float64) float64 {
	return math.Round(sigma*100) / 100
}

// boxPassSizes returns the widths of the three box-filter passes that
// approximate a Gaussian blur of the given sigma, via Kovesi's method:
// the ideal box width is w = sqrt(12*sigma^2/n + 1) for n=3 passes; the
// largest odd integer wl <= w is used for m passes, and wl+2 for the
// remaining n-m passes, with m chosen so the combined variance matches
// the target sigma as closely as an integer box width allows.
func boxPassSizes(sigma float64) [3]int {
	key := quantizeSigma(sigma)
	return boxSizeCache.GetOrCreate(key, func() [3]int {
		return computeBoxPassSizes(key)
	})
}

func computeBoxPassSizes(sigma float64) [3]int {
	const n = 3
	if sigma <= 0 {
		return [3]int{1, 1, 1}
	}

	ideal := math.Sqrt(12*sigma*sigma/n + 1)
	wl := int(math.Floor(ideal))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu := wl + 2

	mf := (12*sigma*sigma - n*float64(wl*wl) - 4*n*float64(wl) - 3*n) / (-4*float64(wl) - 4)
	m := int(math.Round(mf))
	if m < 0 {
		m = 0
	}
	if m > n {
		m = n
	}

	var sizes [3]int
	for i := 0; i < n; i++ {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}
