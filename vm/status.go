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

import "fmt"

// Kind enumerates the machine states. A machine starts Running and moves to
// exactly one of the other kinds, after which its state never changes again.
type Kind int

const (
	Running    Kind = iota
	Halted          // '!' executed
	EOFWrite        // '{' executed with A == MAX
	NoIO            // watchdog fired: no I/O progress, see Watchdog
	ReadError       // input collaborator failed (not end of input)
	WriteError      // output collaborator failed
)

// Status is the machine state. Err carries the underlying I/O cause for
// ReadError and WriteError and is nil for every other kind.
//
// Halted and EOFWrite are the two designed termination paths of a Dis
// program, not failures.
type Status struct {
	Kind Kind
	Err  error
}

// Terminal reports whether the machine has stopped.
func (s Status) Terminal() bool { return s.Kind != Running }

func (s Status) String() string {
	switch s.Kind {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case EOFWrite:
		return "halted on EOF write"
	case NoIO:
		return "no I/O progress"
	case ReadError:
		return fmt.Sprintf("read error: %v", s.Err)
	case WriteError:
		return fmt.Sprintf("write error: %v", s.Err)
	}
	return fmt.Sprintf("status(%d)", int(s.Kind))
}
