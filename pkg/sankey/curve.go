package sankey

const (
	// curveSamples is the length of the raw step function sampled for a
	// ribbon's center line, half at the left value and half at the right.
	curveSamples = 100
	// smoothWindow is the moving-average window applied twice to the step
	// function, producing the sigmoid-like transition.
	smoothWindow = 20
)

// CurveLen is the number of samples in a ribbon center curve returned by
// [RibbonCurve]. Two smoothing passes shrink the raw step function from
// curveSamples to curveSamples - 2*(smoothWindow-1).
const CurveLen = curveSamples - 2*(smoothWindow-1)

// RibbonCurve samples the smoothed center line of a ribbon between its
// left and right vertical centers. The samples are evenly spaced across
// the horizontal extent, the first sits at leftCenter and the last at
// rightCenter (up to floating point rounding), and the sequence is
// monotone with no overshoot outside the [leftCenter, rightCenter] range
// (in either direction).
//
// The shape comes from smoothing a half-left, half-right step function
// with two moving-average passes, which yields the gentle S-curve of the
// drawn ribbons.
func RibbonCurve(leftCenter, rightCenter float64) []float64 {
	ys := make([]float64, curveSamples)
	for i := range ys {
		if i < curveSamples/2 {
			ys[i] = leftCenter
		} else {
			ys[i] = rightCenter
		}
	}
	ys = movingAverage(ys, smoothWindow)
	ys = movingAverage(ys, smoothWindow)
	return ys
}

// movingAverage convolves xs with a uniform window, keeping only the fully
// overlapped positions. The result has len(xs) - window + 1 samples.
func movingAverage(xs []float64, window int) []float64 {
	if len(xs) < window {
		return nil
	}
	weight := 1 / float64(window)
	out := make([]float64, len(xs)-window+1)
	for i := range out {
		var sum float64
		for k := 0; k < window; k++ {
			sum += xs[i+k] * weight
		}
		out[i] = sum
	}
	return out
}

// Linspace returns n evenly spaced samples from start to end, inclusive.
// Returns nil for n < 1 and a single start sample for n == 1.
func Linspace(start, end float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}
