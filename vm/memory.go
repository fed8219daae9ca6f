package vm

import "encoding/binary"

// Memory is a word-addressable byte array. Word accesses require alignment;
// byte accesses do not. Growth zeros the newly added region; shrink simply
// drops the trailing bytes.
type Memory struct {
	bytes []byte
}

// newMemory allocates a zeroed Memory of the given size in words.
func newMemory(sizeWords UWord) (*Memory, Status) {
	m := &Memory{}
	if st := m.realloc(sizeWords); !st.Ok() {
		return nil, st
	}
	return m, StatusOK
}

// Size returns the current memory size in bytes.
func (m *Memory) Size() UWord {
	return UWord(len(m.bytes))
}

// realloc grows or shrinks memory to sizeWords words. On growth, the newly
// added trailing bytes are zero. Fails with StatusIO if the requested size
// would overflow the byte-addressable range.
func (m *Memory) realloc(sizeWords UWord) Status {
	if sizeWords > MaxMemorySize {
		return StatusIO
	}

	newSize := sizeWords * WordSize
	if newSize <= UWord(len(m.bytes)) {
		m.bytes = m.bytes[:newSize]
		return StatusOK
	}

	grown := make([]byte, newSize)
	copy(grown, m.bytes)
	m.bytes = grown
	return StatusOK
}

// NativeAddressOfRange returns a slice aliasing [addr, addr+length) of the
// underlying storage, or nil if that range does not fit entirely within
// memory. Only trusted callers that still respect the same bounds rules
// should use this; it bypasses the per-access checks below.
func (m *Memory) NativeAddressOfRange(addr, length UWord) []byte {
	if addr >= m.Size() || length > m.Size()-addr {
		return nil
	}
	return m.bytes[addr : addr+length]
}

// LoadWord reads the word at addr.
func (m *Memory) LoadWord(addr UWord) (Word, Status) {
	if addr >= m.Size() || m.Size()-addr < WordSize {
		return 0, StatusBounds
	}
	if !IsAligned(addr) {
		return 0, StatusMisaligned
	}
	return Word(binary.LittleEndian.Uint32(m.bytes[addr:])), StatusOK
}

// StoreWord writes value at addr.
func (m *Memory) StoreWord(addr UWord, value Word) Status {
	if addr >= m.Size() || m.Size()-addr < WordSize {
		return StatusBounds
	}
	if !IsAligned(addr) {
		return StatusMisaligned
	}
	binary.LittleEndian.PutUint32(m.bytes[addr:], uint32(value))
	return StatusOK
}

// LoadByte reads the byte at addr.
func (m *Memory) LoadByte(addr UWord) (Byte, Status) {
	if addr >= m.Size() {
		return 0, StatusBounds
	}
	return m.bytes[addr], StatusOK
}

// StoreByte writes value at addr.
func (m *Memory) StoreByte(addr UWord, value Byte) Status {
	if addr >= m.Size() {
		return StatusBounds
	}
	m.bytes[addr] = value
	return StatusOK
}
