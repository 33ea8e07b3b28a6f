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
	"fmt"
	"strings"

	"github.com/db47h/dis/asm"
	"github.com/db47h/dis/vm"
)

// Shows how to assemble a program and run it against in-memory byte streams.
func ExampleInstance_Run() {
	prog := `
	}	( read one byte into A )
	{	( write it back )
	!	( halt )
	`
	img, err := asm.Assemble("echo.dis", strings.NewReader(prog))
	if err != nil {
		panic(err)
	}

	output := bytes.NewBuffer(nil)
	i, err := vm.NewDefault(
		vm.Input(strings.NewReader("hello")),
		vm.Output(output))
	if err != nil {
		panic(err)
	}
	if err = i.LoadBytes(img); err != nil {
		panic(err)
	}

	st := i.Run()
	fmt.Printf("%s %v\n", output.String(), st)

	// Output:
	// h halted
}

// A machine without input sees the end-of-stream sentinel on every read;
// writing the sentinel back is the designed way for a filter program to stop.
func ExampleStatus() {
	img, _ := asm.Assemble("eof.dis", strings.NewReader("}{"))
	i, _ := vm.NewDefault()
	if err := i.LoadBytes(img); err != nil {
		panic(err)
	}
	fmt.Println(i.Run())

	// Output:
	// halted on EOF write
}
