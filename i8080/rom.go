package i8080

import (
	"errors"
	"io/fs"
	"os"
)

// Load copies rom into memory at address 0.
func (c *CPU) Load(rom []byte) (LoadResult, error) {
	if err := c.mem.Load(rom, 0); err != nil {
		return LoadError, err
	}
	return LoadOk, nil
}

// LoadRom reads filename into memory at address 0.
func (c *CPU) LoadRom(filename string) (LoadResult, error) {
	return c.LoadRomAt(filename, 0)
}

// LoadRomAt reads filename into memory starting at addr.
func (c *CPU) LoadRomAt(filename string, addr uint16) (LoadResult, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadNotFound, &ErrRom{Filename: filename, Err: ErrRomNotFound}
		}
		return LoadError, &ErrRom{Filename: filename, Err: ErrRomUnreadable}
	}
	if err := c.mem.Load(rom, addr); err != nil {
		return LoadError, &ErrRom{Filename: filename, Err: err}
	}
	return LoadOk, nil
}
