package vm

// State is a complete VM instance: its memory, its combined data/frame
// stack, and the small set of registers that drive instruction fetch and
// dispatch. Nothing in this package reads or writes a State's registers
// except through the accessors below; a caller implementing the opcode
// dispatcher is expected to do the same.
type State struct {
	memory *Memory
	stack  *Stack

	pc     UWord
	i      Word
	endism Word

	// args holds the host-supplied argv strings backing the OXARGC/OXARG
	// extended opcodes, kept as plain Go strings outside VM memory. Not
	// touched by anything in this file;
	// SetArgs/Args exist so a dispatcher can serve those two opcodes without
	// reaching into unexported fields.
	args []string
}

// littleEndian is the value this tree stores in the ENDISM register (0 for
// little-endian, 1 for big-endian). This tree's Memory always encodes
// words little-endian (see memory.go), so ENDISM is informational only,
// surfaced for a dispatcher implementing the original's endianness-query
// opcode.
const littleEndian Word = 0

// NewState allocates a State with memoryWords words of memory and
// stackWords words of stack, both zeroed, with every register at its zero
// value. It fails if either size exceeds its package maximum.
func NewState(memoryWords, stackWords UWord) (*State, Status) {
	memory, st := newMemory(memoryWords)
	if !st.Ok() {
		return nil, st
	}
	stack, st := newStack(stackWords)
	if !st.Ok() {
		return nil, st
	}
	return &State{
		memory: memory,
		stack:  stack,
		endism: littleEndian,
	}, StatusOK
}

// Memory returns the State's word-addressable memory.
func (s *State) Memory() *Memory {
	return s.memory
}

// Stack returns the State's combined data/frame stack.
func (s *State) Stack() *Stack {
	return s.stack
}

// PC returns the program counter: the address the next instruction will be
// fetched from.
func (s *State) PC() UWord {
	return s.pc
}

// SetPC sets the program counter.
func (s *State) SetPC(addr UWord) {
	s.pc = addr
}

// I returns the instruction register: the most recently fetched, not yet
// fully dispatched, instruction word.
func (s *State) I() Word {
	return s.i
}

// SetI sets the instruction register.
func (s *State) SetI(v Word) {
	s.i = v
}

// Endism reports the VM's configured endianness register: 0 for
// little-endian, 1 for big-endian.
func (s *State) Endism() Word {
	return s.endism
}

// SetArgs installs the host command-line arguments a dispatcher serves
// through the OXARGC/OXARG extended opcodes. Args does not copy args' byte
// representation into VM memory; a dispatcher implementing OXARG is
// responsible for encoding the requested string into the address the
// calling program provides.
func (s *State) SetArgs(args []string) {
	s.args = args
}

// Args returns the host command-line arguments previously installed with
// SetArgs.
func (s *State) Args() []string {
	return s.args
}

// LoadByte reads the byte at addr from the State's memory.
func (s *State) LoadByte(addr UWord) (Byte, Status) {
	return s.memory.LoadByte(addr)
}

// StoreByte writes value at addr in the State's memory.
func (s *State) StoreByte(addr UWord, value Byte) Status {
	return s.memory.StoreByte(addr, value)
}

// Destroy releases a State's resources. Go's garbage collector makes this a
// no-op today; it exists so a caller mirroring the original lifecycle
// (init/destroy pairs) has somewhere to put that call without it silently
// vanishing if State ever grows a resource the collector can't reclaim on
// its own (an open file, a mapped region).
func (s *State) Destroy() {}
