// This file is part of dis - https://github.com/db47h/dis
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ring implements the fixed-width modular arithmetic of the Dis
// machine: values are N-digit numbers in base B, wrapping at END = B^N.
//
// END is in general not a power of two (the canonical Dis configuration is
// B=3, N=10, END=59049), so values never wrap at the native width of the
// cell type. All operations reduce modulo END explicitly and are written so
// that intermediate results cannot overflow the cell type.
package ring

import "github.com/pkg/errors"

// Uint is the set of unsigned integer types usable as ring cells.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Ring performs arithmetic on values in [0, B^N). A Ring has no mutable
// state; its methods are safe for concurrent use.
type Ring[T Uint] struct {
	base   T
	digits int
	end    uint64
	max    T
	msd    T // weight of the most significant digit, B^(N-1)
}

// New returns a Ring over base^digits values stored in T. It fails when
// base < 2, digits < 1, or when the largest ring value base^digits - 1 does
// not fit in T. The modulus base^digits itself must fit in a uint64.
func New[T Uint](base, digits int) (*Ring[T], error) {
	if base < 2 {
		return nil, errors.Errorf("ring: invalid base %d", base)
	}
	if digits < 1 {
		return nil, errors.Errorf("ring: invalid digit count %d", digits)
	}
	maxT := uint64(^T(0))
	if uint64(base) > maxT {
		return nil, errors.Errorf("ring: base %d does not fit the cell type", base)
	}
	end := uint64(1)
	for i := 0; i < digits; i++ {
		if end > (1<<64-1)/uint64(base) {
			return nil, errors.Errorf("ring: %d^%d overflows uint64", base, digits)
		}
		end *= uint64(base)
	}
	if end-1 > maxT {
		return nil, errors.Errorf("ring: %d^%d-1 does not fit the cell type", base, digits)
	}
	return &Ring[T]{
		base:   T(base),
		digits: digits,
		end:    end,
		max:    T(end - 1),
		msd:    T(end / uint64(base)),
	}, nil
}

// Default returns the canonical Dis ring: base 3, 10 digits, END = 59049.
func Default() *Ring[uint16] {
	r, err := New[uint16](3, 10)
	if err != nil {
		panic(err)
	}
	return r
}

// End returns the ring modulus B^N.
func (r *Ring[T]) End() uint64 { return r.end }

// Max returns END-1, the largest ring value. It doubles as the Dis
// end-of-stream sentinel.
func (r *Ring[T]) Max() T { return r.max }

// Base returns the digit base B.
func (r *Ring[T]) Base() int { return int(uint64(r.base)) }

// Digits returns the digit count N.
func (r *Ring[T]) Digits() int { return r.digits }

// IsValid reports whether x is a ring value, i.e. 0 <= x <= Max.
func (r *Ring[T]) IsValid(x T) bool { return uint64(x) < r.end }

// Succ returns x+1 mod END.
func (r *Ring[T]) Succ(x T) T {
	if x == r.max {
		return 0
	}
	return x + 1
}

// Pred returns x-1 mod END.
func (r *Ring[T]) Pred(x T) T {
	if x == 0 {
		return r.max
	}
	return x - 1
}

// Add returns x+y mod END. The wrapping branch computes x - (END-y) instead
// of the sum, so the result is exact even when x+y does not fit in T.
func (r *Ring[T]) Add(x, y T) T {
	if d := r.max - y; x > d {
		return x - d - 1
	}
	return x + y
}

// Sub returns x-y mod END.
func (r *Ring[T]) Sub(x, y T) T {
	if x >= y {
		return x - y
	}
	return x + (r.max - y) + 1
}

// RotateRight rotates the base-B digit representation of x by one position:
// the least significant digit becomes the most significant one and every
// other digit shifts down one position.
func (r *Ring[T]) RotateRight(x T) T {
	return x/r.base + x%r.base*r.msd
}

// DigitSub subtracts y from x one base-B digit at a time, modulo B, with no
// borrow between digit positions. This is the Dis '|' operation.
func (r *Ring[T]) DigitSub(x, y T) T {
	var z T
	for w := T(1); x != 0 || y != 0; w *= r.base {
		dx, dy := x%r.base, y%r.base
		if dx >= dy {
			z += (dx - dy) * w
		} else {
			z += (r.base - (dy - dx)) * w
		}
		x /= r.base
		y /= r.base
	}
	return z
}
