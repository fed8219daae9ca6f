package predictor

import (
	"bufio"
	"fmt"
	"io"
)

// ErrCorruptOpcode is wrapped into the returned error when a trace byte
// names an opcode outside the predictor's low primitive range.
type ErrCorruptOpcode struct {
	Opcode byte
	Offset int64
}

func (e *ErrCorruptOpcode) Error() string {
	return fmt.Sprintf("corrupt trace: opcode %#02x at offset %d is not in [0, %d)", e.Opcode, e.Offset, NumOpcodes)
}

// ReadTrace folds every opcode byte read from r into the builder's count
// matrix, starting from history 0. It stops at EOF and returns nil, or
// returns *ErrCorruptOpcode on the first out-of-range opcode.
func (b *Builder) ReadTrace(r io.Reader) error {
	br := bufio.NewReader(r)
	var history uint32
	var offset int64

	for {
		o, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if int(o) >= NumOpcodes {
			return &ErrCorruptOpcode{Opcode: o, Offset: offset}
		}

		b.addCount(history, o)
		history = b.Step(history, o)
		offset++
	}
}
