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

	"github.com/pkg/errors"
)

// Step executes one fetch-decode-execute cycle. If the machine has already
// stopped, Step changes nothing and returns the terminal status unchanged.
func (i *Instance[T]) Step() Status {
	if i.status.Kind != Running {
		return i.status
	}
	switch i.Mem[i.C] {
	case OpHalt:
		i.status = Status{Kind: Halted}
	case OpLoad:
		i.D = i.Mem[i.D]
	case OpRotate:
		i.store(i.ring.RotateRight(i.Mem[i.D]))
	case OpJump:
		i.C = i.Mem[i.D]
	case OpWrite:
		i.write()
	case OpSub:
		i.store(i.ring.DigitSub(i.A, i.Mem[i.D]))
	case OpRead:
		i.read()
	default:
		// OpNop and every unmapped cell value: no effect.
	}
	i.insCount++
	if i.status.Kind != Running {
		return i.status
	}
	i.C = i.ring.Succ(i.C)
	i.D = i.ring.Succ(i.D)
	if i.moved {
		i.quiet, i.moved = 0, false
	} else if i.quiet++; i.watchdog > 0 && i.quiet >= i.watchdog {
		i.status = Status{Kind: NoIO}
	}
	return i.status
}

// Run steps the machine until it stops and returns the terminal status.
// Calling Run again keeps returning the same status.
func (i *Instance[T]) Run() Status {
	for i.status.Kind == Running {
		i.Step()
	}
	return i.status
}

// store is the write-back shared by '>' and '|': the computed value goes to
// both the accumulator and the cell at D.
func (i *Instance[T]) store(z T) {
	i.A = z
	i.Mem[i.D] = z
}

func (i *Instance[T]) write() {
	if i.A == i.ring.Max() {
		i.status = Status{Kind: EOFWrite}
		return
	}
	if i.output == nil {
		return
	}
	if err := i.output.WriteByte(byte(i.A)); err != nil {
		i.status = Status{Kind: WriteError, Err: errors.Wrap(err, "write failed")}
		return
	}
	i.moved = true
}

func (i *Instance[T]) read() {
	if i.input == nil {
		i.A = i.ring.Max()
		return
	}
	c, err := i.input.ReadByte()
	switch {
	case err == nil:
		// clamp into the ring for sub-byte moduli
		if end := i.ring.End(); uint64(c) >= end {
			c = byte(uint64(c) % end)
		}
		i.A = T(c)
		i.moved = true
	case err == io.EOF:
		// end of input is data, not an error
		i.A = i.ring.Max()
	default:
		i.A = i.ring.Max()
		i.status = Status{Kind: ReadError, Err: errors.Wrap(err, "read failed")}
	}
}
