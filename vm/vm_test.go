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

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/dis/ring"
	"github.com/db47h/dis/vm"
)

const max = 59048

func setup(t *testing.T, prog string, opts ...vm.Option) *vm.Instance[uint16] {
	t.Helper()
	i, err := vm.NewDefault(opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err = i.LoadBytes([]byte(prog)); err != nil {
		t.Fatal(err)
	}
	return i
}

func checkRegs(t *testing.T, name string, i *vm.Instance[uint16], a, c, d uint16) {
	t.Helper()
	if i.A != a || i.C != c || i.D != d {
		t.Errorf("%s: expected A=%d C=%d D=%d, got A=%d C=%d D=%d", name, a, c, d, i.A, i.C, i.D)
	}
}

func assertKind(t *testing.T, name string, st vm.Status, k vm.Kind) {
	t.Helper()
	if st.Kind != k {
		t.Errorf("%s: expected status kind %d, got %v", name, int(k), st)
	}
}

func TestStep_advance(t *testing.T) {
	// cell 0 is zero, not a command: the step must change nothing but C and D
	i := setup(t, "")
	st := i.Step()
	assertKind(t, "advance", st, vm.Running)
	checkRegs(t, "advance", i, 0, 1, 1)
	if n := i.InstructionCount(); n != 1 {
		t.Errorf("InstructionCount: expected 1, got %d", n)
	}
}

func TestOp_halt(t *testing.T) {
	i := setup(t, "!")
	st := i.Step()
	assertKind(t, "halt", st, vm.Halted)
	// a halting step neither mutates memory nor advances C and D
	checkRegs(t, "halt", i, 0, 0, 0)
	if i.Mem[0] != '!' {
		t.Errorf("halt: memory mutated: Mem[0] = %d", i.Mem[0])
	}
}

func TestOp_load(t *testing.T) {
	// '*' at C=0 with D=0: D becomes Mem[0] = 42, then advances
	i := setup(t, "*")
	i.Step()
	checkRegs(t, "load", i, 0, 1, 43)
}

func TestOp_jump(t *testing.T) {
	// '^' at C=0 with D=0: C becomes Mem[0] = 94, then advances
	i := setup(t, "^")
	i.Step()
	checkRegs(t, "jump", i, 0, 95, 1)
}

func TestOp_rotate(t *testing.T) {
	// '>' at C=0 with D=0 rotates Mem[0] = 62 (2202 base 3) into 39386 and
	// stores it in both A and Mem[0]
	i := setup(t, ">")
	i.Step()
	checkRegs(t, "rotate", i, 39386, 1, 1)
	if i.Mem[0] != 39386 {
		t.Errorf("rotate: expected Mem[0] = 39386, got %d", i.Mem[0])
	}
}

func TestOp_sub(t *testing.T) {
	// '|' at C=0 with A=0, Mem[0] = 124 (11121 base 3): the borrow-free
	// digit subtraction 0 - 124 is 22212 base 3 = 239
	i := setup(t, "|")
	i.Step()
	checkRegs(t, "sub", i, 239, 1, 1)
	if i.Mem[0] != 239 {
		t.Errorf("sub: expected Mem[0] = 239, got %d", i.Mem[0])
	}
}

func TestOp_write_eof(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, "{", vm.Output(&out))
	i.A = max
	st := i.Step()
	assertKind(t, "write EOF", st, vm.EOFWrite)
	checkRegs(t, "write EOF", i, max, 0, 0)
	if out.Len() != 0 {
		t.Errorf("write EOF: expected no output, got %q", out.String())
	}
}

func TestOp_write(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, "{", vm.Output(&out))
	i.A = 'A'
	st := i.Step()
	assertKind(t, "write", st, vm.Running)
	checkRegs(t, "write", i, 'A', 1, 1)
	if out.String() != "A" {
		t.Errorf("write: expected output \"A\", got %q", out.String())
	}
}

func TestOp_read(t *testing.T) {
	i := setup(t, "}}", vm.Input(strings.NewReader("x")))
	i.Step()
	checkRegs(t, "read", i, 'x', 1, 1)
	// input exhausted: the next read is the EOF sentinel, not an error
	st := i.Step()
	assertKind(t, "read EOF", st, vm.Running)
	checkRegs(t, "read EOF", i, max, 2, 2)
}

func TestOp_read_unbound(t *testing.T) {
	i := setup(t, "}")
	st := i.Step()
	assertKind(t, "read unbound", st, vm.Running)
	checkRegs(t, "read unbound", i, max, 1, 1)
}

func TestNopParity(t *testing.T) {
	// '_' and an unmapped cell value must be indistinguishable
	run := func(prog string) *vm.Instance[uint16] {
		i := setup(t, prog)
		i.Step()
		return i
	}
	a, b := run("_"), run("A")
	if a.A != b.A || a.C != b.C || a.D != b.D || a.Status() != b.Status() {
		t.Errorf("no-op parity: '_' gave A=%d C=%d D=%d, 'A' gave A=%d C=%d D=%d",
			a.A, a.C, a.D, b.A, b.C, b.D)
	}
	for p := 1; p < len(a.Mem); p++ {
		if a.Mem[p] != b.Mem[p] {
			t.Fatalf("no-op parity: memory differs at %d", p)
		}
	}
}

func TestStep_idempotent(t *testing.T) {
	i := setup(t, "!")
	st := i.Run()
	assertKind(t, "idempotent", st, vm.Halted)
	snap := make([]uint16, len(i.Mem))
	copy(snap, i.Mem)
	a, c, d, n := i.A, i.C, i.D, i.InstructionCount()
	for s := 0; s < 3; s++ {
		if st2 := i.Step(); st2 != st {
			t.Fatalf("idempotent: status changed to %v", st2)
		}
	}
	if i.A != a || i.C != c || i.D != d || i.InstructionCount() != n {
		t.Error("idempotent: registers changed after terminal status")
	}
	for p := range snap {
		if i.Mem[p] != snap[p] {
			t.Fatalf("idempotent: memory changed at %d", p)
		}
	}
}

func TestRun_echo(t *testing.T) {
	// read a byte, write it back, halt
	var out bytes.Buffer
	i := setup(t, "}{!", vm.Input(strings.NewReader("hi")), vm.Output(&out))
	st := i.Run()
	assertKind(t, "echo", st, vm.Halted)
	if out.String() != "h" {
		t.Errorf("echo: expected output \"h\", got %q", out.String())
	}
	if n := i.InstructionCount(); n != 3 {
		t.Errorf("echo: expected 3 steps, got %d", n)
	}
}

func TestInput_stacking(t *testing.T) {
	// the reader pushed last is consumed first
	i := setup(t, "}}}",
		vm.Input(strings.NewReader("a")),
		vm.Input(strings.NewReader("b")))
	i.Step()
	if i.A != 'b' {
		t.Errorf("input stack: expected 'b' first, got %q", rune(i.A))
	}
	i.Step()
	if i.A != 'a' {
		t.Errorf("input stack: expected 'a' second, got %q", rune(i.A))
	}
	i.Step()
	if i.A != max {
		t.Errorf("input stack: expected EOF sentinel, got %d", i.A)
	}
}

func TestWatchdog(t *testing.T) {
	// an all-zero memory never performs I/O: the watchdog must stop it
	i := setup(t, "", vm.Watchdog(100))
	st := i.Run()
	assertKind(t, "watchdog", st, vm.NoIO)
	if n := i.InstructionCount(); n != 100 {
		t.Errorf("watchdog: expected 100 steps, got %d", n)
	}
}

func TestWatchdog_reset(t *testing.T) {
	// a successful read resets the quiet counter
	i := setup(t, "}", vm.Watchdog(3), vm.Input(strings.NewReader("ab")))
	st := i.Run()
	assertKind(t, "watchdog reset", st, vm.NoIO)
	if n := i.InstructionCount(); n != 4 {
		t.Errorf("watchdog reset: expected 4 steps, got %d", n)
	}
}

func TestNew_errors(t *testing.T) {
	if _, err := vm.New[uint16](nil); err == nil {
		t.Error("New(nil): expected error")
	}
}

func TestLoadBytes(t *testing.T) {
	r, err := ring.New[uint8](3, 5) // END = 243
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(r)
	if err != nil {
		t.Fatal(err)
	}
	if err = i.LoadBytes([]byte{250}); err == nil {
		t.Error("LoadBytes: expected invalid cell error")
	}
	if err = i.LoadBytes(bytes.Repeat([]byte{'_'}, 244)); err == nil {
		t.Error("LoadBytes: expected size error")
	}
	// a failed load must not leave a partial image behind
	if err = i.LoadBytes([]byte{'!', '!'}); err != nil {
		t.Fatal(err)
	}
	if err = i.LoadBytes([]byte{'*'}); err != nil {
		t.Fatal(err)
	}
	if i.Mem[0] != '*' || i.Mem[1] != 0 {
		t.Errorf("LoadBytes: expected memory reset, got Mem[0]=%d Mem[1]=%d", i.Mem[0], i.Mem[1])
	}
}

func TestSetMemory(t *testing.T) {
	i, err := vm.NewDefault()
	if err != nil {
		t.Fatal(err)
	}
	if err = i.SetMemory([]uint16{'^', 59049}); err == nil {
		t.Error("SetMemory: expected invalid cell error")
	}
	if err = i.SetMemory([]uint16{'^', 59048}); err != nil {
		t.Fatal(err)
	}
	if i.Mem[0] != '^' || i.Mem[1] != 59048 {
		t.Error("SetMemory: image not loaded")
	}
}
