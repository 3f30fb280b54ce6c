package i8080Test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/is386/i8080core/i8080"
	"github.com/is386/i8080core/logger"
)

var (
	TST8080 = "TST8080.COM"
	DEBUG   = false
)

// prints "HI" through BDOS function 9 and returns to CP/M
var hello = []byte{
	0x11, 0x0b, 0x01, // LXI D,0x010b
	0x0e, 0x09,       // MVI C,9
	0xcd, 0x05, 0x00, // CALL 0x0005
	0xc3, 0x00, 0x00, // JMP 0x0000
	'H', 'I', '$',
}

// prints "OK" through BDOS function 2
var putChar = []byte{
	0x0e, 0x02,       // MVI C,2
	0x1e, 'O',        // MVI E,'O'
	0xcd, 0x05, 0x00, // CALL 0x0005
	0x1e, 'K',        // MVI E,'K'
	0xcd, 0x05, 0x00, // CALL 0x0005
	0x76,             // HLT
}

func TestHello(t *testing.T) {
	assert := assert.New(t)

	logger.Clear()
	tm, err := NewTestMachineFromBytes(hello, DEBUG)
	assert.NoError(err)

	out := &bytes.Buffer{}
	tm.Output = out
	assert.NoError(tm.Run())

	assert.Equal("HI", out.String())
	assert.Equal(7, tm.Instructions())
	assert.Equal(74, tm.Cycles())
	assert.Equal(uint16(0x0002), tm.CPU().GetPC())

	buf := &bytes.Buffer{}
	logger.Tail(buf, 1)
	assert.Equal("cpm: test completed: instructions 7, cycles 74\n", buf.String())
}

func TestPutChar(t *testing.T) {
	assert := assert.New(t)

	tm, err := NewTestMachineFromBytes(putChar, DEBUG)
	assert.NoError(err)

	out := &bytes.Buffer{}
	tm.Output = out
	assert.NoError(tm.Run())
	assert.Equal("OK", out.String())
}

// a taken conditional call costs six cycles more than its table entry
func TestCycleCount(t *testing.T) {
	assert := assert.New(t)

	tm, err := NewTestMachineFromBytes([]byte{
		0x0e, 0x02,       // MVI C,2
		0x1e, 'A',        // MVI E,'A'
		0xc4, 0x05, 0x00, // CNZ 0x0005
		0xc3, 0x00, 0x00, // JMP 0x0000
	}, DEBUG)
	assert.NoError(err)

	out := &bytes.Buffer{}
	tm.Output = out
	assert.NoError(tm.Run())
	assert.Equal("A", out.String())
	assert.Equal(7, tm.Instructions())
	assert.Equal(7+7+17+10+10+10+10, tm.Cycles())
}

func TestMaxSteps(t *testing.T) {
	assert := assert.New(t)

	// JMP 0x0100 forever
	tm, err := NewTestMachineFromBytes([]byte{0xc3, 0x00, 0x01}, DEBUG)
	assert.NoError(err)
	tm.MaxSteps = 100
	assert.NoError(tm.Run())
	assert.Equal(100, tm.Instructions())
	assert.Equal(1000, tm.Cycles())
}

func TestNotKnownOpcode(t *testing.T) {
	assert := assert.New(t)

	tm, err := NewTestMachineFromBytes([]byte{0x00, 0xdd, 0x00, 0x00}, DEBUG)
	assert.NoError(err)

	err = tm.Run()
	var eo i8080.ErrOpcode
	assert.True(errors.As(err, &eo))
	assert.Equal(i8080.ErrOpcode(0xdd), eo)
	assert.Equal(1, tm.Instructions())
	assert.Equal(uint16(0x0101), tm.CPU().GetPC())
}

func TestFromFile(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join(t.TempDir(), "HELLO.COM")
	assert.NoError(os.WriteFile(name, hello, 0o644))

	tm, err := NewTestMachine(name, DEBUG)
	assert.NoError(err)
	out := &bytes.Buffer{}
	tm.Output = out
	assert.NoError(tm.Run())
	assert.Equal("HI", out.String())

	_, err = NewTestMachine(filepath.Join(t.TempDir(), "MISSING.COM"), DEBUG)
	assert.True(errors.Is(err, i8080.ErrRomNotFound))
}

func TestDebugTrace(t *testing.T) {
	assert := assert.New(t)

	logger.Clear()
	tm, err := NewTestMachineFromBytes(hello, true)
	assert.NoError(err)
	tm.Output = &bytes.Buffer{}
	assert.NoError(tm.Run())

	buf := &bytes.Buffer{}
	logger.Write(buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(lines, 8)
	assert.True(strings.HasPrefix(lines[0], "i8080: PC: 0100"))
	logger.Clear()
}

func TestTST8080(t *testing.T) {
	if _, err := os.Stat(TST8080); err != nil {
		t.Skipf("%s not present", TST8080)
	}

	cycles := 4924
	tm, err := NewTestMachine(TST8080, DEBUG)
	if err != nil {
		t.Fatal(err)
	}
	tm.Output = &bytes.Buffer{}
	if err := tm.Run(); err != nil {
		t.Fatal(err)
	}
	if tm.Cycles() != cycles {
		t.Errorf("[cycles] expected: %d, actual: %d", cycles, tm.Cycles())
	}
}
