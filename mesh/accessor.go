package mesh

import (
	"fmt"

	"github.com/cwbudde/algo-geom/vec"
)

// Accessor is a validated view of count entries in a byte buffer. Every
// entry holds up to four packed components of type T. Because the layout is
// checked once by NewAccessor, reads through valid indices never fail.
type Accessor[T Element] struct {
	buf    []byte
	count  int
	width  int
	offset int
	stride int
}

// NewAccessor returns an accessor over count entries of width components
// each (1 to 4). The default stride packs entries back to back.
func NewAccessor[T Element](buf []byte, count, width int, opts ...AccessorOption) (*Accessor[T], error) {
	if width < 1 || width > 4 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidLayout)
	}
	cfg := ApplyAccessorOptions(opts...)
	packed := width * SizeOf[T]()
	stride := cfg.Stride
	if stride == 0 {
		stride = packed
	}
	if count < 0 || cfg.ByteOffset < 0 || stride < packed {
		return nil, fmt.Errorf("count %d, offset %d, stride %d for %d-byte entries: %w",
			count, cfg.ByteOffset, stride, packed, ErrInvalidLayout)
	}
	if count > 0 {
		if _, ok := entryStart(len(buf), cfg.ByteOffset, count-1, stride, packed); !ok {
			return nil, fmt.Errorf("%d entries of stride %d at offset %d exceed %d bytes: %w",
				count, stride, cfg.ByteOffset, len(buf), ErrOutOfBounds)
		}
	}
	return &Accessor[T]{buf: buf, count: count, width: width, offset: cfg.ByteOffset, stride: stride}, nil
}

// Len returns the number of entries.
func (a *Accessor[T]) Len() int { return a.count }

// Width returns the number of components per entry.
func (a *Accessor[T]) Width() int { return a.width }

// Stride returns the effective distance between entries in bytes.
func (a *Accessor[T]) Stride() int { return a.stride }

// Scalar returns the first component of entry i.
func (a *Accessor[T]) Scalar(i int) T {
	var out [1]T
	a.read(out[:], i)
	return out[0]
}

// Vec2 returns the first two components of entry i. Missing components of
// narrower entries are zero.
func (a *Accessor[T]) Vec2(i int) vec.Vec2[T] {
	var v vec.Vec2[T]
	a.read(v[:], i)
	return v
}

// Vec3 returns the first three components of entry i.
func (a *Accessor[T]) Vec3(i int) vec.Vec3[T] {
	var v vec.Vec3[T]
	a.read(v[:], i)
	return v
}

// Vec4 returns the four components of entry i.
func (a *Accessor[T]) Vec4(i int) vec.Vec4[T] {
	var v vec.Vec4[T]
	a.read(v[:], i)
	return v
}

// Scalars appends the first component of every entry to dst.
func (a *Accessor[T]) Scalars(dst []T) []T {
	for i := range a.count {
		dst = append(dst, a.Scalar(i))
	}
	return dst
}

func (a *Accessor[T]) read(dst []T, i int) {
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("mesh: accessor index %d out of range [0, %d)", i, a.count))
	}
	n := min(len(dst), a.width)
	if err := readComponents(dst[:n], a.buf, a.offset, i, a.stride); err != nil {
		// The layout was validated at construction.
		panic(err)
	}
}
