package shape

import "strconv"

// Kind identifies a primitive type.
type Kind uint8

const (
	KindAABB Kind = iota
	KindSphere
	KindPlane
	KindCapsule
	KindOBB
	KindTriangle
)

var kindNames = [...]string{
	KindAABB:     "aabb",
	KindSphere:   "sphere",
	KindPlane:    "plane",
	KindCapsule:  "capsule",
	KindOBB:      "obb",
	KindTriangle: "triangle",
}

// String returns the lower-case shape name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
