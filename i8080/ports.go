package i8080

// Ports is the I/O bus used by the IN and OUT instructions. The 8080 has 256
// input and 256 output ports, separate from memory.
type Ports interface {
	In(port uint8) uint8
	Out(port uint8, val uint8)
}
