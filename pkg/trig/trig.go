// Package trig provides table-driven fixed-point sine and cosine over a native
// angle unit. It replaces library transcendental calls so the solar engine
// runs on integer arithmetic only.
package trig

//go:generate go run ../../cmd/trig-table-gen -o table.go

const (
	// MaxAngle is one full turn in native units.
	MaxAngle = 0x10000

	// MaxRatio is the scale of Sin and Cos results. Dividing by it recovers
	// a proportion in [-1, 1].
	MaxRatio = 0xffff

	// TwoPiE6 is 2π radians in 1e-6 radian units, pre-rounded.
	TwoPiE6 = 6283185

	tableSize = 1024
	tableStep = MaxAngle / tableSize
)

// Angle is an angle in native units where MaxAngle is a full turn. Values
// outside [0, MaxAngle) wrap.
type Angle int32

// FromDegreesE6 converts degrees scaled by 1e6 to an Angle, truncating
// toward zero.
func FromDegreesE6(degE6 int32) Angle {
	return Angle(int64(MaxAngle) * int64(degE6) / (360 * 1000000))
}

// FromRadiansE6 converts radians scaled by 1e6 to an Angle, truncating
// toward zero.
func FromRadiansE6(radE6 int32) Angle {
	return Angle(int64(MaxAngle) * int64(radE6) / TwoPiE6)
}

// Sin returns sin(a) scaled by MaxRatio, linearly interpolated between
// table entries. Error against a double-precision reference is at most 2.
func Sin(a Angle) int32 {
	u := int32(a) & (MaxAngle - 1)
	i := u / tableStep
	frac := u % tableStep

	s0 := sinTable[i]
	s1 := sinTable[(i+1)%tableSize]
	return s0 + (s1-s0)*frac/tableStep
}

// Cos returns cos(a) scaled by MaxRatio.
func Cos(a Angle) int32 {
	return Sin(a + MaxAngle/4)
}
