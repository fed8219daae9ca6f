package predictor

import (
	"bufio"
	"fmt"
	"io"
)

// index assigns a dense common-id to every history whose total successor
// count meets the builder's countThreshold, in ascending history order,
// and -1 to every other history.
func (b *Builder) index() []int32 {
	ids := make([]int32, NumHistories)
	next := int32(0)
	for h := 0; h < NumHistories; h++ {
		if b.totalAt(uint32(h)) >= b.countThreshold {
			ids[h] = next
			next++
		} else {
			ids[h] = -1
		}
	}
	return ids
}

// WritePredictor runs the indexing and emission passes and writes the
// resulting sparse transition table to w in the formatting contract's
// exact byte layout.
func (b *Builder) WritePredictor(w io.Writer) error {
	ids := b.index()
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("[\n"); err != nil {
		return err
	}

	first := true
	for h := 0; h < NumHistories; h++ {
		if ids[h] < 0 {
			continue
		}
		record := b.formatRecord(uint32(h), ids)
		if first {
			if _, err := bw.WriteString("    " + record); err != nil {
				return err
			}
			first = false
		} else {
			if _, err := bw.WriteString(",\n    " + record); err != nil {
				return err
			}
		}
	}

	if _, err := bw.WriteString("\n]\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// formatRecord builds the "{...}" object for common history h, including
// only opcodes whose successor history is itself common.
func (b *Builder) formatRecord(h uint32, ids []int32) string {
	out := "{"
	sep := ""
	for o := 0; o < NumOpcodes; o++ {
		successor := b.Step(h, byte(o))
		newState := ids[successor]
		if newState < 0 {
			continue
		}
		count := b.count(h, byte(o))
		out += fmt.Sprintf(`%s"%02x": {"new_state": %d, "count": %d}`, sep, o, newState, count)
		sep = ", "
	}
	out += "}"
	return out
}
