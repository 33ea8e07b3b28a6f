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

// Dis Virtual Machine commands. A command is the ASCII code of its source
// character; any cell value not listed here executes as a no-op, exactly
// like OpNop.
const (
	OpHalt   = '!' // stop execution
	OpLoad   = '*' // D = Mem[D]
	OpRotate = '>' // A = Mem[D] = rotate right Mem[D]
	OpJump   = '^' // C = Mem[D]
	OpNop    = '_'
	OpWrite  = '{' // write low byte of A, halt when A == MAX
	OpSub    = '|' // A = Mem[D] = digit subtract A, Mem[D]
	OpRead   = '}' // read one byte into A, MAX on end of input
)

// IsCommand reports whether cell value c is one of the eight Dis commands.
func IsCommand(c byte) bool {
	switch c {
	case OpHalt, OpLoad, OpRotate, OpJump, OpNop, OpWrite, OpSub, OpRead:
		return true
	}
	return false
}
