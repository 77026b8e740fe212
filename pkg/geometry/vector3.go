package geometry

import "math"

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Min returns the componentwise minimum of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return v.zip(other, math.Min)
}

// Max returns the componentwise maximum of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return v.zip(other, math.Max)
}

func (v Vector3) zip(other Vector3, f func(a, b float64) float64) Vector3 {
	return Vector3{X: f(v.X, other.X), Y: f(v.Y, other.Y), Z: f(v.Z, other.Z)}
}

// Centroid returns the arithmetic mean of the given points.
// An empty argument list yields the origin.
func Centroid(points ...Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	n := float64(len(points))
	return Vector3{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}
