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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"

	"github.com/db47h/dis/internal/disi"
	"github.com/db47h/dis/ring"
	"github.com/db47h/dis/vm"
)

// maxErrors is the number of errors reported before assembly gives up.
const maxErrors = 10

// ErrAsmEntry is a single assembly error at a given source position.
type ErrAsmEntry struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsmEntry) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 entries.
type ErrAsm []ErrAsmEntry

func (e ErrAsm) Error() string {
	msgs := make([]string, len(e))
	for n, entry := range e {
		msgs[n] = entry.Error()
	}
	return strings.Join(msgs, "\n")
}

// Assemble reads Dis source from the supplied io.Reader and returns the
// program image as raw command bytes, one byte per memory cell starting at
// address 0.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (img []byte, err error) {
	var (
		errs       ErrAsm
		pos        = scanner.Position{Filename: name, Line: 1, Column: 1}
		inComment  bool
		commentPos scanner.Position
		b          = make([]byte, 1)
	)
	fail := func(p scanner.Position, format string, args ...interface{}) {
		if len(errs) < maxErrors {
			errs = append(errs, ErrAsmEntry{p, fmt.Sprintf(format, args...)})
		}
	}
	for {
		n, rerr := r.Read(b)
		if n == 0 {
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				return nil, errors.Wrap(rerr, "read failed")
			}
			continue
		}
		c, cur := b[0], pos
		pos.Offset++
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		switch {
		case inComment:
			if c == ')' {
				inComment = false
			}
		case c == '(':
			inComment = true
			commentPos = cur
		case c == ')':
			fail(cur, "unmatched ')'")
		case c == ' ', c == '\t', c == '\r', c == '\n', c == '\v', c == '\f':
		case vm.IsCommand(c):
			img = append(img, c)
		default:
			fail(cur, "invalid command %q", c)
		}
	}
	if inComment {
		fail(commentPos, "unterminated comment")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return img, nil
}

// Disassemble writes the source form of the cell at position p to the
// specified io.Writer: its command character if the cell holds one, '_'
// otherwise. It returns any write error.
func Disassemble[T ring.Uint](mem []T, p int, w io.Writer) error {
	c := byte('_')
	if v := uint64(mem[p]); v < 128 && vm.IsCommand(byte(v)) {
		c = byte(v)
	}
	_, err := w.Write([]byte{c})
	return errors.Wrap(err, "write failed")
}

// DisassembleAll writes the source form of all cells in mem to the specified
// io.Writer, 64 commands per line. Trailing cells that would render as '_'
// are omitted. It returns any write error.
func DisassembleAll[T ring.Uint](mem []T, w io.Writer) error {
	end := len(mem)
	for end > 0 {
		if v := uint64(mem[end-1]); v < 128 && vm.IsCommand(byte(v)) && v != vm.OpNop {
			break
		}
		end--
	}
	ew := disi.NewErrWriter(w)
	for p := 0; p < end; p++ {
		Disassemble(mem[:end], p, ew)
		if (p+1)%64 == 0 || p == end-1 {
			ew.Write([]byte{'\n'})
		}
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
