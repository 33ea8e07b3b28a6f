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

// dis is a command line interpreter for the Dis esoteric language.
//
// Usage:
//
//	dis [options] program.dis
//
// The program is assembled into the initial memory image of a canonical Dis
// machine (base 3, 10 digits, 59049 cells) which then runs with stdin and
// stdout as its byte channels until it stops. The process exits 0 when the
// program stops through one of its two designed halts ('!', or '{' with the
// accumulator holding the end-of-stream sentinel) and 1 on I/O errors,
// watchdog or step-limit aborts.
//
// Options:
//
//	-with filename
//		read program input from the named file before stdin. May be given
//		multiple times; files are read in order of appearance.
//	-watchdog n
//		stop with a "no I/O progress" status after n consecutive steps
//		without a byte moving in or out. 0 (the default) disables this.
//		Dis programs have no conditional branch that could busy-wait
//		usefully, so a generous threshold is a practical way to catch
//		programs stuck in an I/O-free loop.
//	-limit n
//		hard cap on the total number of steps.
//	-dump
//		on exit, print registers, status and memory up to its last
//		non-zero cell.
//	-noraw
//		do not switch the terminal to raw mode.
//	-debug
//		log assembly and run diagnostics to stderr.
package main
