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

// Package asm turns Dis source text into an initial memory image and back.
//
// A Dis program is a sequence of the eight command characters
//
//	! * > ^ _ { | }
//
// Each command assembles to one memory cell holding its ASCII code, in
// source order, starting at address 0. Whitespace between commands is
// skipped. Comments run from '(' to the next ')' and may span lines; they do
// not nest. Any other character is an assembly error.
//
// Assembly errors carry the file/line/column position of the offending
// character and are collected so that a single pass reports up to ten of
// them.
package asm
