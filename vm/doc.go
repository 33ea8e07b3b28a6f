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

// Package vm implements the Dis virtual machine.
//
// The Dis machine has three registers - the accumulator A, the program
// counter C and the data pointer D - and a single memory of END cells shared
// by code and data, where END is the modulus of the arithmetic ring the
// machine is built on (59049 in the canonical base 3, 10 digit
// configuration). Every register and every cell holds one ring value.
//
// Execution is a plain fetch-decode-execute loop over the cell addressed by
// C. Eight cell values, the ASCII codes of the Dis command characters, have
// an effect:
//
//	33  !   halt
//	42  *   D = Mem[D]
//	62  >   A = Mem[D] = Mem[D] rotated right one base-B digit
//	94  ^   C = Mem[D]
//	95  _   no-op
//	123 {   write the low byte of A to the output; halts when A == MAX
//	124 |   A = Mem[D] = A minus Mem[D], digit by digit without borrow
//	125 }   read one byte into A; A = MAX on end of input
//
// Every other cell value executes exactly like '_'. After each step that did
// not stop the machine, C and D both advance by one, wrapping at END.
//
// The machine does not talk to files or terminals itself: the driver hands
// it an input io.Reader and an output io.Writer and the two I/O commands
// move single bytes across them. End of input is not an error - it surfaces
// to the program as the MAX sentinel in A, the same value that '{' uses to
// halt the machine from the output side. All failure conditions are folded
// into a Status value rather than panics: stepping a stopped machine is a
// no-op.
package vm
