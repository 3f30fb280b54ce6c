package i8080

// MemorySize is the size of the 8080 address space.
const MemorySize = 64 * 1024

// Memory is the flat address space of the processor. A uint16 address can
// never leave it.
type Memory [MemorySize]uint8

func (m *Memory) Read(addr uint16) uint8 {
	return m[addr]
}

func (m *Memory) Write(addr uint16, val uint8) {
	m[addr] = val
}

// Load copies rom into memory starting at addr. Memory is not touched if rom
// does not fit.
func (m *Memory) Load(rom []byte, addr uint16) error {
	if len(rom) > MemorySize-int(addr) {
		return ErrRomTooLarge
	}
	copy(m[addr:], rom)
	return nil
}
