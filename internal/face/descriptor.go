package face

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimensions = errors.New("invalid face dimensions")
	ErrHeadRotation      = errors.New("head rotation too large")
)

// Landmark names a facial keypoint.
type Landmark string

const (
	LeftEye    Landmark = "leftEye"
	RightEye   Landmark = "rightEye"
	Nose       Landmark = "nose"
	Mouth      Landmark = "mouth"
	LeftCheek  Landmark = "leftCheek"
	RightCheek Landmark = "rightCheek"
)

// Landmarks lists every landmark in encoding order.
var Landmarks = []Landmark{LeftEye, RightEye, Nose, Mouth, LeftCheek, RightCheek}

// Feature names a scalar measurement.
type Feature string

const (
	Smile        Feature = "smile"
	LeftEyeOpen  Feature = "leftEyeOpen"
	RightEyeOpen Feature = "rightEyeOpen"
	HeadEulerY   Feature = "headEulerY"
	HeadEulerZ   Feature = "headEulerZ"
)

// Features lists every scalar feature in encoding order.
var Features = []Feature{Smile, LeftEyeOpen, RightEyeOpen, HeadEulerY, HeadEulerZ}

func (f Feature) isAngle() bool {
	return f == HeadEulerY || f == HeadEulerZ
}

const (
	// MaxContourPoints sets the contour sampling step, max(1, n/MaxContourPoints).
	// The step rounds down, so contours shorter than 2*MaxContourPoints keep
	// more than MaxContourPoints points.
	MaxContourPoints = 20
	// MaxHeadAngle is the largest head rotation, in degrees, accepted at
	// capture time and between two compared faces.
	MaxHeadAngle = 30.0
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Rect is an axis-aligned box in image coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detection is raw detector output for a single face, in image coordinates.
// Probabilities are nil when the detector could not classify them.
type Detection struct {
	Bounds       Rect               `json:"bounds"`
	Landmarks    map[Landmark]Point `json:"landmarks,omitempty"`
	Contour      []Point            `json:"contour,omitempty"`
	Smile        *float64           `json:"smile,omitempty"`
	LeftEyeOpen  *float64           `json:"leftEyeOpen,omitempty"`
	RightEyeOpen *float64           `json:"rightEyeOpen,omitempty"`
	HeadEulerY   float64            `json:"headEulerY"`
	HeadEulerZ   float64            `json:"headEulerZ"`
}

// Descriptor is a normalized face description.
type Descriptor struct {
	Landmarks map[Landmark]Point
	Contour   []Point
	Features  map[Feature]float64
}

// Normalize converts a detection into a Descriptor. Coordinates are taken
// relative to the centre of the face box and divided by its longest side.
func Normalize(d Detection) (Descriptor, error) {
	w, h := d.Bounds.Width, d.Bounds.Height
	if w <= 0 || h <= 0 {
		return Descriptor{}, ErrInvalidDimensions
	}
	if math.Abs(d.HeadEulerY) > MaxHeadAngle || math.Abs(d.HeadEulerZ) > MaxHeadAngle {
		return Descriptor{}, fmt.Errorf("%w: y=%.1f z=%.1f", ErrHeadRotation, d.HeadEulerY, d.HeadEulerZ)
	}

	scale := math.Max(w, h)
	centre := Point{X: d.Bounds.Left + w/2, Y: d.Bounds.Top + h/2}
	rel := func(p Point) Point {
		return Point{X: (p.X - centre.X) / scale, Y: (p.Y - centre.Y) / scale}
	}

	out := Descriptor{
		Landmarks: make(map[Landmark]Point, len(d.Landmarks)),
		Features:  make(map[Feature]float64, len(Features)),
	}
	for _, l := range Landmarks {
		if p, ok := d.Landmarks[l]; ok {
			out.Landmarks[l] = rel(p)
		}
	}

	if n := len(d.Contour); n > 0 {
		step := max(1, n/MaxContourPoints)
		for i := 0; i < n; i += step {
			out.Contour = append(out.Contour, rel(d.Contour[i]))
		}
	}

	out.Features[Smile] = valueOrZero(d.Smile)
	out.Features[LeftEyeOpen] = valueOrZero(d.LeftEyeOpen)
	out.Features[RightEyeOpen] = valueOrZero(d.RightEyeOpen)
	out.Features[HeadEulerY] = d.HeadEulerY
	out.Features[HeadEulerZ] = d.HeadEulerZ

	return out, nil
}

func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// normalizeAngle maps an angle in degrees to [-180, 180].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a < -180 {
		a += 360
	}
	return a
}
