package exec

import (
	"bufio"
	"io"

	"github.com/pietgo/piet/internal/navigate"
)

// Machine is the stack machine state the instruction table operates
// on: the data stack plus the direction pointer and codel chooser,
// since pointer and switch mutate navigation state directly.
type Machine struct {
	Stack *Stack
	DP    navigate.Direction
	CC    navigate.Chooser

	In  *bufio.Reader
	Out io.Writer
}

// NewMachine returns a machine with an empty stack, reading from in
// and writing program output to out.
func NewMachine(in io.Reader, out io.Writer, dp navigate.Direction, cc navigate.Chooser) *Machine {
	return &Machine{
		Stack: NewStack(),
		DP:    dp,
		CC:    cc,
		In:    bufio.NewReader(in),
		Out:   out,
	}
}

// Dispatch executes the instruction keyed by (hueShift, lightShift),
// the color difference between the previous and current block
// (spec §4.5). blockSize is the codel count of the block just
// exited, the operand of push.
func Dispatch(hueShift, lightShift int, blockSize int, m *Machine) {
	if hueShift < 0 || hueShift >= 6 || lightShift < 0 || lightShift >= 3 {
		return
	}
	if op := opTable[hueShift][lightShift]; op != nil {
		op(m, blockSize)
	}
}
