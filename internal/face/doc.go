// Package face turns face detector output into a compact textual descriptor
// and compares two descriptors.
//
// A descriptor holds landmark positions and contour points normalized to the
// face box (centre at 0,0, longest side equal to 1), expression
// probabilities and head rotation angles. It is stored on the user record as
// an opaque string:
//
//	leftEye:-0.2500,-0.1000;nose:0.0000,0.0500;faceContour:0.1,0.2;0.3,0.4;smile:0.9000;...;headEulerZ:1.5000
//
// Two descriptors are compared feature by feature with an exponential
// falloff, and the averaged similarity (0..100) is checked against a
// threshold.
package face
