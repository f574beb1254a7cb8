package lane

import "github.com/cwbudde/algo-geom/vec"

// M3 is a three-lane mask.
type M3 [3]Mask

// M4 is a four-lane mask.
type M4 [4]Mask

// FromBool3 widens a boolean lane vector.
func FromBool3(b vec.Bool3) M3 {
	return M3{FromBool(b[0]), FromBool(b[1]), FromBool(b[2])}
}

// FromBool4 widens a boolean lane vector.
func FromBool4(b vec.Bool4) M4 {
	return M4{FromBool(b[0]), FromBool(b[1]), FromBool(b[2]), FromBool(b[3])}
}

// Lt3 sets each lane where a < b.
func Lt3[T vec.Number](a, b vec.Vec3[T]) M3 {
	return M3{FromBool(a[0] < b[0]), FromBool(a[1] < b[1]), FromBool(a[2] < b[2])}
}

// Le3 sets each lane where a <= b.
func Le3[T vec.Number](a, b vec.Vec3[T]) M3 {
	return M3{FromBool(a[0] <= b[0]), FromBool(a[1] <= b[1]), FromBool(a[2] <= b[2])}
}

// Gt3 sets each lane where a > b.
func Gt3[T vec.Number](a, b vec.Vec3[T]) M3 { return Lt3(b, a) }

// Ge3 sets each lane where a >= b.
func Ge3[T vec.Number](a, b vec.Vec3[T]) M3 { return Le3(b, a) }

// And returns the lane-wise AND.
func (m M3) And(o M3) M3 { return M3{m[0] & o[0], m[1] & o[1], m[2] & o[2]} }

// Or returns the lane-wise OR.
func (m M3) Or(o M3) M3 { return M3{m[0] | o[0], m[1] | o[1], m[2] | o[2]} }

// Not inverts every lane.
func (m M3) Not() M3 { return M3{^m[0], ^m[1], ^m[2]} }

// Any ORs the lanes together.
func (m M3) Any() Mask { return m[0] | m[1] | m[2] }

// All ANDs the lanes together.
func (m M3) All() Mask { return m[0] & m[1] & m[2] }

// Bools narrows the mask back to booleans.
func (m M3) Bools() vec.Bool3 {
	return vec.Bool3{m[0] != 0, m[1] != 0, m[2] != 0}
}

// Select3 blends a and b lane by lane.
func Select3[T vec.Float](m M3, a, b vec.Vec3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{Select(m[0], a[0], b[0]), Select(m[1], a[1], b[1]), Select(m[2], a[2], b[2])}
}

// HMax3 reduces v to its largest lane by rotate-and-max.
func HMax3[T vec.Float](v vec.Vec3[T]) T {
	r := v.YZX()
	m := v.Max(r)
	m = m.Max(r.YZX())
	return m[0]
}

// HMin3 reduces v to its smallest lane by rotate-and-min.
func HMin3[T vec.Float](v vec.Vec3[T]) T {
	r := v.YZX()
	m := v.Min(r)
	m = m.Min(r.YZX())
	return m[0]
}

// Lt4 sets each lane where a < b.
func Lt4[T vec.Number](a, b vec.Vec4[T]) M4 {
	return M4{FromBool(a[0] < b[0]), FromBool(a[1] < b[1]), FromBool(a[2] < b[2]), FromBool(a[3] < b[3])}
}

// Le4 sets each lane where a <= b.
func Le4[T vec.Number](a, b vec.Vec4[T]) M4 {
	return M4{FromBool(a[0] <= b[0]), FromBool(a[1] <= b[1]), FromBool(a[2] <= b[2]), FromBool(a[3] <= b[3])}
}

// Gt4 sets each lane where a > b.
func Gt4[T vec.Number](a, b vec.Vec4[T]) M4 { return Lt4(b, a) }

// Ge4 sets each lane where a >= b.
func Ge4[T vec.Number](a, b vec.Vec4[T]) M4 { return Le4(b, a) }

// And returns the lane-wise AND.
func (m M4) And(o M4) M4 { return M4{m[0] & o[0], m[1] & o[1], m[2] & o[2], m[3] & o[3]} }

// Or returns the lane-wise OR.
func (m M4) Or(o M4) M4 { return M4{m[0] | o[0], m[1] | o[1], m[2] | o[2], m[3] | o[3]} }

// Not inverts every lane.
func (m M4) Not() M4 { return M4{^m[0], ^m[1], ^m[2], ^m[3]} }

// Any ORs the lanes together.
func (m M4) Any() Mask { return m[0] | m[1] | m[2] | m[3] }

// All ANDs the lanes together.
func (m M4) All() Mask { return m[0] & m[1] & m[2] & m[3] }

// Bools narrows the mask to booleans.
func (m M4) Bools() vec.Bool4 {
	return vec.Bool4{m[0] != 0, m[1] != 0, m[2] != 0, m[3] != 0}
}

// Select4 blends a and b lane by lane.
func Select4[T vec.Float](m M4, a, b vec.Vec4[T]) vec.Vec4[T] {
	return vec.Vec4[T]{
		Select(m[0], a[0], b[0]), Select(m[1], a[1], b[1]),
		Select(m[2], a[2], b[2]), Select(m[3], a[3], b[3]),
	}
}
