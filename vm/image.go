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
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/db47h/dis/internal/disi"
)

// LoadBytes copies a program image into memory starting at address 0 and
// zeros the rest. Each byte becomes one cell; the machine places no
// constraint on the image beyond cell validity - self-modifying and
// overlapping code/data are legal.
func (i *Instance[T]) LoadBytes(prog []byte) error {
	if len(prog) > len(i.Mem) {
		return errors.Errorf("vm: program size %d exceeds memory size %d", len(prog), len(i.Mem))
	}
	for p, c := range prog {
		if !i.ring.IsValid(T(c)) {
			return errors.Errorf("vm: value %d at offset %d is not a valid cell", c, p)
		}
	}
	for p, c := range prog {
		i.Mem[p] = T(c)
	}
	for p := len(prog); p < len(i.Mem); p++ {
		i.Mem[p] = 0
	}
	return nil
}

// SetMemory is LoadBytes for images built from cell values instead of
// program bytes.
func (i *Instance[T]) SetMemory(cells []T) error {
	if len(cells) > len(i.Mem) {
		return errors.Errorf("vm: image size %d exceeds memory size %d", len(cells), len(i.Mem))
	}
	for p, c := range cells {
		if !i.ring.IsValid(c) {
			return errors.Errorf("vm: value %d at offset %d is not a valid cell", uint64(c), p)
		}
	}
	copy(i.Mem, cells)
	for p := len(cells); p < len(i.Mem); p++ {
		i.Mem[p] = 0
	}
	return nil
}

// Dump writes the registers, status and the memory up to its last non-zero
// cell to the specified io.Writer.
func (i *Instance[T]) Dump(w io.Writer) error {
	ew := disi.NewErrWriter(w)
	fmt.Fprintf(ew, "A %d C %d D %d status %v\n", uint64(i.A), uint64(i.C), uint64(i.D), i.status)
	end := len(i.Mem)
	for end > 0 && i.Mem[end-1] == 0 {
		end--
	}
	for p := 0; p < end; p++ {
		if p > 0 {
			ew.Write([]byte{' '})
		}
		io.WriteString(ew, strconv.FormatUint(uint64(i.Mem[p]), 10))
	}
	if end > 0 {
		ew.Write([]byte{'\n'})
	}
	return ew.Err
}
