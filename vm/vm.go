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

package vm

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/db47h/dis/ring"
)

// Instance represents a Dis VM instance.
//
// The registers and the memory are exported for inspection by drivers and
// debuggers. The machine itself is their only mutator while it runs; writing
// to them between steps is outside the execution contract.
type Instance[T ring.Uint] struct {
	A   T   // accumulator
	C   T   // program counter
	D   T   // data pointer
	Mem []T // unified code/data memory, exactly END cells

	ring     *ring.Ring[T]
	status   Status
	input    io.ByteReader
	output   byteWriter
	insCount int64
	quiet    int64 // consecutive steps without a byte moving
	moved    bool  // a byte moved during the current step
	watchdog int64
}

type config struct {
	inputs   []io.Reader
	output   io.Writer
	watchdog int64
}

// Option interface
type Option func(*config) error

// Input pushes the given reader on top of the input stack. When a reader is
// exhausted, reading resumes from the one pushed before it.
func Input(r io.Reader) Option {
	return func(c *config) error { c.inputs = append(c.inputs, r); return nil }
}

// Output sets the output writer. Without one, written bytes are discarded.
func Output(w io.Writer) Option {
	return func(c *config) error { c.output = w; return nil }
}

// Watchdog makes the machine stop with status NoIO after the given number of
// consecutive steps without a byte moving across either I/O channel. The
// default, 0, disables the watchdog.
func Watchdog(steps int64) Option {
	return func(c *config) error {
		if steps < 0 {
			return errors.Errorf("vm: invalid watchdog threshold %d", steps)
		}
		c.watchdog = steps
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance[T]) SetOptions(opts ...Option) error {
	var c config
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return err
		}
	}
	for _, r := range c.inputs {
		i.PushInput(r)
	}
	if c.output != nil {
		i.output = newByteWriter(c.output)
	}
	if c.watchdog != 0 {
		i.watchdog = c.watchdog
	}
	return nil
}

// New creates a Dis VM instance over the given arithmetic ring, with all
// registers zero and memory of END cells filled with zeros. Options will be
// set by calling SetOptions.
func New[T ring.Uint](r *ring.Ring[T], opts ...Option) (*Instance[T], error) {
	if r == nil {
		return nil, errors.New("vm: nil ring")
	}
	if r.End() > uint64(math.MaxInt) {
		return nil, errors.Errorf("vm: memory size %d out of range", r.End())
	}
	i := &Instance[T]{
		ring: r,
		Mem:  make([]T, int(r.End())),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// NewDefault creates an instance of the canonical Dis machine: base 3, 10
// digit cells, 59049 cells of memory.
func NewDefault(opts ...Option) (*Instance[uint16], error) {
	return New(ring.Default(), opts...)
}

// Ring returns the arithmetic ring the machine operates on.
func (i *Instance[T]) Ring() *ring.Ring[T] { return i.ring }

// Status returns the current machine status.
func (i *Instance[T]) Status() Status { return i.status }

// InstructionCount returns the number of steps executed so far.
func (i *Instance[T]) InstructionCount() int64 { return i.insCount }
