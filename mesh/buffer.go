package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-geom/vec"
)

var (
	// ErrOutOfBounds is returned when a read extends past the end of the buffer.
	ErrOutOfBounds = errors.New("mesh: read out of bounds")
	// ErrInvalidLayout is returned for negative offsets, indices or strides,
	// and for strides too small to hold one element.
	ErrInvalidLayout = errors.New("mesh: invalid buffer layout")
)

// Element is the set of component types a vertex buffer may store.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// SizeOf returns the encoded size of T in bytes.
func SizeOf[T Element]() int {
	var zero T
	return binary.Size(zero)
}

// ElementFromBuffer reads one T at byteOffset + index*stride.
func ElementFromBuffer[T Element](buf []byte, byteOffset, index, stride int) (T, error) {
	var out [1]T
	if err := readComponents(out[:], buf, byteOffset, index, stride); err != nil {
		return 0, err
	}
	return out[0], nil
}

// Vec2FromBuffer reads two packed Ts at byteOffset + index*stride.
func Vec2FromBuffer[T Element](buf []byte, byteOffset, index, stride int) (vec.Vec2[T], error) {
	var v vec.Vec2[T]
	err := readComponents(v[:], buf, byteOffset, index, stride)
	return v, err
}

// Vec3FromBuffer reads three packed Ts at byteOffset + index*stride.
func Vec3FromBuffer[T Element](buf []byte, byteOffset, index, stride int) (vec.Vec3[T], error) {
	var v vec.Vec3[T]
	err := readComponents(v[:], buf, byteOffset, index, stride)
	return v, err
}

// Vec4FromBuffer reads four packed Ts at byteOffset + index*stride.
func Vec4FromBuffer[T Element](buf []byte, byteOffset, index, stride int) (vec.Vec4[T], error) {
	var v vec.Vec4[T]
	err := readComponents(v[:], buf, byteOffset, index, stride)
	return v, err
}

func readComponents[T Element](dst []T, buf []byte, byteOffset, index, stride int) error {
	if byteOffset < 0 || index < 0 || stride < 0 {
		return fmt.Errorf("offset %d, index %d, stride %d: %w", byteOffset, index, stride, ErrInvalidLayout)
	}
	size := SizeOf[T]() * len(dst)
	start, ok := entryStart(len(buf), byteOffset, index, stride, size)
	if !ok {
		return fmt.Errorf("%d bytes at offset %d + %d*%d of %d: %w", size, byteOffset, index, stride, len(buf), ErrOutOfBounds)
	}
	if _, err := binary.Decode(buf[start:start+size], binary.LittleEndian, dst); err != nil {
		return fmt.Errorf("decode at byte %d: %w", start, err)
	}
	return nil
}

// entryStart returns byteOffset + index*stride when size bytes from there fit
// in a buffer of n bytes. Arguments must be non-negative.
func entryStart(n, byteOffset, index, stride, size int) (int, bool) {
	if stride > 0 && index > (math.MaxInt-byteOffset)/stride {
		return 0, false
	}
	start := byteOffset + index*stride
	if start > n || size > n-start {
		return 0, false
	}
	return start, true
}
