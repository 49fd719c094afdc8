package face

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/registerface/internal/common"
)

// DecodeDetection reads a detection exported by a face detector as JSON.
func DecodeDetection(b []byte) (Detection, error) {
	var d Detection
	if err := json.Unmarshal(b, &d); err != nil {
		return Detection{}, fmt.Errorf("%w: %v", common.ErrInvalidFaceData, err)
	}
	return d, nil
}

// DescriptorFromJSON turns a JSON detection into a descriptor string.
func DescriptorFromJSON(b []byte) (string, error) {
	det, err := DecodeDetection(b)
	if err != nil {
		return "", err
	}
	d, err := Normalize(det)
	if err != nil {
		return "", err
	}
	return Encode(d), nil
}
