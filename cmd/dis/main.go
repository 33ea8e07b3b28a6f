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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/db47h/dis/asm"
	"github.com/db47h/dis/vm"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	debug    bool
	dump     bool
	noRawIO  bool
	watchdog int64
	limit    int64
)

func main() {
	var withFiles fileList

	flag.BoolVar(&dump, "dump", false, "dump registers and memory upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.Int64Var(&watchdog, "watchdog", 0, "stop after `n` steps without I/O progress (0 disables)")
	flag.Int64Var(&limit, "limit", 0, "stop after `n` steps (0 disables)")
	flag.Var(&withFiles, "with", "read program input from `filename` before stdin (can be specified multiple times)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] program.dis\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	os.Exit(run(flag.Arg(0), withFiles))
}

func newLogger() *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dis: %v\n", err)
		return zap.NewNop()
	}
	return log
}

func run(name string, withFiles fileList) int {
	log := newLogger()
	defer log.Sync()

	f, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dis: %v\n", err)
		return 1
	}
	prog, err := asm.Assemble(name, bufio.NewReader(f))
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	log.Debug("program assembled", zap.String("file", name), zap.Int("commands", len(prog)))

	if !noRawIO {
		if tearDown, rerr := setRawIO(); rerr == nil {
			defer tearDown()
		} else {
			log.Debug("raw terminal IO unavailable", zap.Error(rerr))
		}
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	opts := []vm.Option{
		vm.Output(stdout),
		vm.Watchdog(watchdog),
		vm.Input(bufio.NewReader(os.Stdin)),
	}
	// push -with files on the input stack in reverse order so that they are
	// read in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		wf, werr := os.Open(withFiles[n])
		if werr != nil {
			fmt.Fprintf(os.Stderr, "dis: %v\n", werr)
			return 1
		}
		defer wf.Close()
		opts = append(opts, vm.Input(bufio.NewReader(wf)))
	}

	i, err := vm.NewDefault(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dis: %v\n", err)
		return 1
	}
	if err = i.LoadBytes(prog); err != nil {
		fmt.Fprintf(os.Stderr, "dis: %v\n", err)
		return 1
	}

	st := i.Status()
	if limit > 0 {
		for !st.Terminal() && i.InstructionCount() < limit {
			st = i.Step()
		}
	} else {
		st = i.Run()
	}
	stdout.Flush()

	log.Debug("machine stopped",
		zap.Stringer("status", st),
		zap.Int64("steps", i.InstructionCount()),
		zap.Uint16("a", i.A),
		zap.Uint16("c", i.C),
		zap.Uint16("d", i.D))

	if dump {
		if derr := i.Dump(os.Stdout); derr != nil {
			fmt.Fprintf(os.Stderr, "dis: %v\n", derr)
			return 1
		}
	}

	switch st.Kind {
	case vm.Halted, vm.EOFWrite:
		return 0
	case vm.Running:
		fmt.Fprintf(os.Stderr, "dis: step limit reached after %d steps\n", i.InstructionCount())
		return 1
	default:
		fmt.Fprintf(os.Stderr, "dis: %v\n", st)
		return 1
	}
}
