package face

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/registerface/internal/common"
)

const contourKey = "faceContour"

var errNotFinite = errors.New("not a finite number")

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Encode renders d in the descriptor string format.
func Encode(d Descriptor) string {
	var b strings.Builder

	for _, l := range Landmarks {
		p, ok := d.Landmarks[l]
		if !ok {
			continue
		}
		b.WriteString(string(l))
		b.WriteByte(':')
		writePoint(&b, p)
		b.WriteByte(';')
	}

	if len(d.Contour) > 0 {
		b.WriteString(contourKey)
		b.WriteByte(':')
		for _, p := range d.Contour {
			writePoint(&b, p)
			b.WriteByte(';')
		}
	}

	first := true
	for _, f := range Features {
		v, ok := d.Features[f]
		if !ok {
			continue
		}
		if !first {
			b.WriteByte(';')
		}
		first = false
		b.WriteString(string(f))
		b.WriteByte(':')
		b.WriteString(formatFloat(v))
	}

	return strings.TrimSuffix(b.String(), ";")
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(p.Y))
}

// Parse reads a descriptor string produced by Encode. Unknown keys are
// skipped. A scalar may use ',' as its decimal separator.
func Parse(s string) (Descriptor, error) {
	d := Descriptor{
		Landmarks: make(map[Landmark]Point),
		Features:  make(map[Feature]float64),
	}

	known := make(map[string]Landmark, len(Landmarks))
	for _, l := range Landmarks {
		known[string(l)] = l
	}
	features := make(map[string]Feature, len(Features))
	for _, f := range Features {
		features[string(f)] = f
	}

	inContour := false
	for _, seg := range strings.Split(strings.TrimSpace(s), ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		key, value, keyed := strings.Cut(seg, ":")
		if !keyed {
			if !inContour {
				continue
			}
			p, err := parsePoint(seg)
			if err != nil {
				return Descriptor{}, err
			}
			d.Contour = append(d.Contour, p)
			continue
		}

		inContour = false
		switch {
		case key == contourKey:
			inContour = true
			if value == "" {
				continue
			}
			p, err := parsePoint(value)
			if err != nil {
				return Descriptor{}, err
			}
			d.Contour = append(d.Contour, p)
		case known[key] != "":
			p, err := parsePoint(value)
			if err != nil {
				return Descriptor{}, err
			}
			d.Landmarks[known[key]] = p
		case features[key] != "":
			v, err := parseScalar(value)
			if err != nil {
				return Descriptor{}, err
			}
			d.Features[features[key]] = v
		}
	}

	if d.empty() {
		return Descriptor{}, fmt.Errorf("%w: no features", common.ErrInvalidFaceData)
	}
	return d, nil
}

func (d Descriptor) empty() bool {
	return len(d.Landmarks) == 0 && len(d.Contour) == 0 && len(d.Features) == 0
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(ys, ",") {
		return Point{}, fmt.Errorf("%w: bad point %q", common.ErrInvalidFaceData, s)
	}
	x, err := parseFinite(xs)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad point %q", common.ErrInvalidFaceData, s)
	}
	y, err := parseFinite(ys)
	if err != nil {
		return Point{}, fmt.Errorf("%w: bad point %q", common.ErrInvalidFaceData, s)
	}
	return Point{X: x, Y: y}, nil
}

func parseScalar(s string) (float64, error) {
	v, err := parseFinite(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return 0, fmt.Errorf("%w: bad value %q", common.ErrInvalidFaceData, s)
	}
	return v, nil
}

// parseFinite rejects NaN and infinities, which can never match.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// Validate reports whether s is a usable descriptor string.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}
