// Package bitkit implements the unchecked bit level primitives for every fixed width integer type.
//
// All functions are generic over constraints.Integer,
// so named integer types (enums) are accepted just like the predeclared ones.
// The width of T is derived from its size, never from a per type table.
//
// Every function here is pure and defined for every input.
// Overflow aware arithmetic built on top of these lives in the mathkit package.
package bitkit

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the bit width of T.
func Bits[T constraints.Integer]() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	// all bits set is -1 for signed types and MAX for unsigned ones
	return ^zero < 0
}

// Mask returns a uint64 with the lowest Bits[T]() bits set.
func Mask[T constraints.Integer]() uint64 {
	return ^uint64(0) >> (64 - Bits[T]())
}

// Max returns the largest value of T.
func Max[T constraints.Integer]() T {
	if IsSigned[T]() {
		return T(Mask[T]() >> 1)
	}
	return T(Mask[T]())
}

// Min returns the smallest value of T.
// For signed types this is the two's complement most negative value.
func Min[T constraints.Integer]() T {
	if IsSigned[T]() {
		return HighBit[T]()
	}
	return 0
}

// HighBit returns the value of T where only the most significant bit is set.
func HighBit[T constraints.Integer]() T {
	return T(uint64(1) << (Bits[T]() - 1))
}

// ZeroExtend returns the bit pattern of x as an unsigned 64-bit value,
// with every bit above the width of T cleared.
func ZeroExtend[T constraints.Integer](x T) uint64 {
	return uint64(x) & Mask[T]()
}

// SignExtend interprets the bit pattern of x as a signed number of the width of T,
// regardless of the signedness of T.
func SignExtend[T constraints.Integer](x T) int64 {
	shift := 64 - Bits[T]()
	return int64(ZeroExtend(x)<<shift) >> shift
}

// FromBits truncates u to the width of T.
func FromBits[T constraints.Integer](u uint64) T {
	return T(u)
}

func CountOnes[T constraints.Integer](x T) uint32 {
	return uint32(bits.OnesCount64(ZeroExtend(x)))
}

func CountZeros[T constraints.Integer](x T) uint32 {
	return Bits[T]() - CountOnes(x)
}

// LeadingZeros counts the zero bits above the most significant set bit.
// LeadingZeros(0) is the bit width of T.
func LeadingZeros[T constraints.Integer](x T) uint32 {
	return uint32(bits.LeadingZeros64(ZeroExtend(x))) - (64 - Bits[T]())
}

// TrailingZeros counts the zero bits below the least significant set bit.
// TrailingZeros(0) is the bit width of T.
func TrailingZeros[T constraints.Integer](x T) uint32 {
	u := ZeroExtend(x)
	if u == 0 {
		return Bits[T]()
	}
	return uint32(bits.TrailingZeros64(u))
}

// LeadingZerosNonZero is LeadingZeros for callers which already know x is not zero.
//
// x must not be zero; the result for zero is unspecified.
func LeadingZerosNonZero[T constraints.Integer](x T) uint32 {
	return uint32(bits.LeadingZeros64(ZeroExtend(x)<<(64-Bits[T]())))
}

// TrailingZerosNonZero is TrailingZeros for callers which already know x is not zero.
//
// x must not be zero; the result for zero is unspecified.
func TrailingZerosNonZero[T constraints.Integer](x T) uint32 {
	return uint32(bits.TrailingZeros64(ZeroExtend(x)))
}

func LeadingOnes[T constraints.Integer](x T) uint32 {
	return LeadingZeros(^x)
}

func TrailingOnes[T constraints.Integer](x T) uint32 {
	return TrailingZeros(^x)
}

// ReverseBits reverses the order of the bits within the width of T.
func ReverseBits[T constraints.Integer](x T) T {
	return T(bits.Reverse64(ZeroExtend(x)) >> (64 - Bits[T]()))
}

// SwapBytes reverses the byte order within the width of T.
func SwapBytes[T constraints.Integer](x T) T {
	return T(bits.ReverseBytes64(ZeroExtend(x)) >> (64 - Bits[T]()))
}

// RotateLeft rotates x left by n bits, n is taken modulo the bit width of T.
func RotateLeft[T constraints.Integer](x T, n uint32) T {
	width := Bits[T]()
	n %= width
	if n == 0 {
		return x
	}
	u := ZeroExtend(x)
	return T(((u << n) | (u >> (width - n))) & Mask[T]())
}

// RotateRight rotates x right by n bits, n is taken modulo the bit width of T.
func RotateRight[T constraints.Integer](x T, n uint32) T {
	width := Bits[T]()
	return RotateLeft(x, width-n%width)
}

// IsPowerOfTwo reports whether exactly one bit is set in x.
// Negative signed values are never powers of two.
func IsPowerOfTwo[T constraints.Integer](x T) bool {
	if x <= 0 {
		return false
	}
	return x&(x-1) == 0
}

var littleEndianHost = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

// ToBE converts x from host byte order to big endian.
func ToBE[T constraints.Integer](x T) T {
	if littleEndianHost {
		return SwapBytes(x)
	}
	return x
}

// ToLE converts x from host byte order to little endian.
func ToLE[T constraints.Integer](x T) T {
	if littleEndianHost {
		return x
	}
	return SwapBytes(x)
}

// FromBE converts a big endian x into host byte order.
func FromBE[T constraints.Integer](x T) T { return ToBE(x) }

// FromLE converts a little endian x into host byte order.
func FromLE[T constraints.Integer](x T) T { return ToLE(x) }

// ToBEBytes returns the memory representation of x in big endian byte order.
func ToBEBytes[T constraints.Integer](x T) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], ZeroExtend(x))
	return buf[8-Bits[T]()/8:]
}

// ToLEBytes returns the memory representation of x in little endian byte order.
func ToLEBytes[T constraints.Integer](x T) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], ZeroExtend(x))
	return buf[:Bits[T]()/8]
}

// FromBEBytes builds a T from its big endian memory representation.
// The length of bs must equal the byte size of T.
func FromBEBytes[T constraints.Integer](bs []byte) T {
	size := int(Bits[T]() / 8)
	if len(bs) != size {
		panic(fmt.Sprintf("bitkit.FromBEBytes: expected %d bytes, got %d", size, len(bs)))
	}
	var buf [8]byte
	copy(buf[8-size:], bs)
	return T(binary.BigEndian.Uint64(buf[:]))
}

// FromLEBytes builds a T from its little endian memory representation.
// The length of bs must equal the byte size of T.
func FromLEBytes[T constraints.Integer](bs []byte) T {
	size := int(Bits[T]() / 8)
	if len(bs) != size {
		panic(fmt.Sprintf("bitkit.FromLEBytes: expected %d bytes, got %d", size, len(bs)))
	}
	var buf [8]byte
	copy(buf[:size], bs)
	return T(binary.LittleEndian.Uint64(buf[:]))
}
