package vec

// Bool2 is a two-lane boolean vector.
type Bool2 [2]bool

// Bool3 is a three-lane boolean vector.
type Bool3 [3]bool

// Bool4 is a four-lane boolean vector.
type Bool4 [4]bool

// Any reports whether some lane is true.
func (b Bool2) Any() bool { return b[0] || b[1] }

// All reports whether every lane is true.
func (b Bool2) All() bool { return b[0] && b[1] }

// Any reports whether some lane is true.
func (b Bool3) Any() bool { return b[0] || b[1] || b[2] }

// All reports whether every lane is true.
func (b Bool3) All() bool { return b[0] && b[1] && b[2] }

// Or returns the lane-wise disjunction.
func (b Bool3) Or(c Bool3) Bool3 { return Bool3{b[0] || c[0], b[1] || c[1], b[2] || c[2]} }

// And returns the lane-wise conjunction.
func (b Bool3) And(c Bool3) Bool3 { return Bool3{b[0] && c[0], b[1] && c[1], b[2] && c[2]} }

// Any reports whether some lane is true.
func (b Bool4) Any() bool { return b[0] || b[1] || b[2] || b[3] }

// All reports whether every lane is true.
func (b Bool4) All() bool { return b[0] && b[1] && b[2] && b[3] }

// Count returns the number of true lanes.
func (b Bool4) Count() int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}
