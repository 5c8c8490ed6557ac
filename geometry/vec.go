// Package geometry contains vector types shared by field computations.
package geometry

// Vec3 is a 3-component field vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
