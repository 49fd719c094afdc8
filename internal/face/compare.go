package face

import "math"

// DefaultThreshold is the similarity, in percent, at or above which two
// descriptors are considered the same person.
const DefaultThreshold = 15.0

// Falloff scales for the per-feature similarity exp(-diff/scale).
const (
	landmarkScale = 0.10
	contourScale  = 0.15
	featureScale  = 0.15
	angleScale    = MaxHeadAngle
)

// Result is the outcome of comparing two descriptors.
type Result struct {
	Matches bool
	// Similarity is the averaged per-feature similarity in percent, 0..100.
	Similarity float64
}

// Compare scores how alike a and b are. Faces whose head rotation differs by
// more than MaxHeadAngle never match.
func Compare(a, b Descriptor, threshold float64) Result {
	if rotatedApart(a, b) {
		return Result{}
	}

	var total float64
	var n int

	for _, l := range Landmarks {
		pa, okA := a.Landmarks[l]
		pb, okB := b.Landmarks[l]
		if !okA || !okB {
			continue
		}
		total += math.Exp(-pa.distance(pb) / landmarkScale)
		n++
	}

	if len(a.Contour) > 0 && len(b.Contour) > 0 {
		total += contourSimilarity(a.Contour, b.Contour)
		n++
	}

	for _, f := range Features {
		va, okA := a.Features[f]
		vb, okB := b.Features[f]
		if !okA || !okB {
			continue
		}
		total += featureSimilarity(f, va, vb)
		n++
	}

	if n == 0 {
		return Result{}
	}

	similarity := total / float64(n) * 100
	return Result{Matches: similarity >= threshold, Similarity: similarity}
}

// CompareEncoded parses both descriptor strings and compares them. Input that
// cannot be parsed never matches.
func CompareEncoded(a, b string, threshold float64) Result {
	da, err := Parse(a)
	if err != nil {
		return Result{}
	}
	db, err := Parse(b)
	if err != nil {
		return Result{}
	}
	return Compare(da, db, threshold)
}

func rotatedApart(a, b Descriptor) bool {
	ya, okYA := a.Features[HeadEulerY]
	yb, okYB := b.Features[HeadEulerY]
	za, okZA := a.Features[HeadEulerZ]
	zb, okZB := b.Features[HeadEulerZ]
	if !okYA || !okYB || !okZA || !okZB {
		return false
	}
	return math.Abs(normalizeAngle(ya-yb)) > MaxHeadAngle ||
		math.Abs(normalizeAngle(za-zb)) > MaxHeadAngle
}

// contourSimilarity pairs points by index and averages their similarity.
func contourSimilarity(a, b []Point) float64 {
	pairs := min(len(a), len(b))
	var sum float64
	for i := 0; i < pairs; i++ {
		sum += math.Exp(-a[i].distance(b[i]) / contourScale)
	}
	return sum / float64(pairs)
}

func featureSimilarity(f Feature, a, b float64) float64 {
	if f.isAngle() {
		diff := math.Abs(normalizeAngle(a) - normalizeAngle(b))
		return math.Exp(-diff / angleScale)
	}
	return math.Exp(-math.Abs(a-b) / featureScale)
}
