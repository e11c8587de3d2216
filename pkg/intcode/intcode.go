// Package intcode implements the Intcode virtual machine.
//
// An Intcode program is a flat array of signed integers holding both code
// and data. Instructions are four positions wide: an opcode followed by two
// operand positions and one destination position. The halt opcode has no
// operands and ends execution immediately.
//
// Every execution runs on its own working copy of the base memory, so a
// Program can be executed any number of times with different parameters
// without the runs observing each other.
package intcode

import (
	"errors"
	"fmt"
)

// Instruction layout.
const (
	instructionWidth = 4 // opcode + two operand positions + destination

	// Override positions written before execution.
	nounPos = 1
	verbPos = 2
)

// Errors.
var (
	ErrUnknownOpcode  = errors.New("unrecognized opcode")
	ErrOutOfRange     = errors.New("memory access out of range")
	ErrShortProgram   = errors.New("program too short for parameter overrides")
	ErrTargetNotFound = errors.New("target not found")
)

// Opcode identifies which operation an instruction performs.
type Opcode int

// Opcode values.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpHalt Opcode = 99
)

// operation returns the arithmetic function for an opcode, or false if the
// opcode has no operation (halt or unrecognized). Keeping the function
// separate from the opcode value keeps dispatch independent of any
// particular operator.
func (op Opcode) operation() (func(a, b int) int, bool) {
	switch op {
	case OpAdd:
		return func(a, b int) int { return a + b }, true
	case OpMul:
		return func(a, b int) int { return a * b }, true
	default:
		return nil, false
	}
}

// Program holds the base memory of an Intcode program. The base memory is
// never mutated after construction.
type Program struct {
	memory []int
}

// New creates a Program from the given memory image. The slice is copied so
// the caller may reuse it.
func New(memory []int) *Program {
	mem := make([]int, len(memory))
	copy(mem, memory)
	return &Program{memory: mem}
}

// Execute runs the program on a fresh working copy with param1 and param2
// written into positions 1 and 2, and returns the value left at position 0.
func (p *Program) Execute(param1, param2 int) (int, error) {
	if len(p.memory) < 3 {
		return 0, fmt.Errorf("%w: have %d positions, need 3", ErrShortProgram, len(p.memory))
	}
	mem := p.clone()
	mem[nounPos] = param1
	mem[verbPos] = param2
	return run(mem)
}

// Run executes the program without overriding any positions.
func (p *Program) Run() (int, error) {
	return run(p.clone())
}

func (p *Program) clone() []int {
	mem := make([]int, len(p.memory))
	copy(mem, p.memory)
	return mem
}

// run is the fetch-decode-execute loop. It mutates mem in place and returns
// the final value at position 0. Running off the end of memory without a
// halt terminates normally.
func run(mem []int) (int, error) {
	if len(mem) == 0 {
		return 0, fmt.Errorf("%w: empty program", ErrOutOfRange)
	}

	for ip := 0; ip < len(mem); ip += instructionWidth {
		op := Opcode(mem[ip])
		if op == OpHalt {
			break
		}

		fn, ok := op.operation()
		if !ok {
			return 0, fmt.Errorf("%w: %d at position %d", ErrUnknownOpcode, mem[ip], ip)
		}

		if ip+3 >= len(mem) {
			return 0, fmt.Errorf("%w: truncated instruction at position %d", ErrOutOfRange, ip)
		}
		srcA, srcB, dst := mem[ip+1], mem[ip+2], mem[ip+3]
		for _, pos := range [3]int{srcA, srcB, dst} {
			if pos < 0 || pos >= len(mem) {
				return 0, fmt.Errorf("%w: position %d referenced at instruction %d", ErrOutOfRange, pos, ip)
			}
		}

		mem[dst] = fn(mem[srcA], mem[srcB])
	}

	return mem[0], nil
}
