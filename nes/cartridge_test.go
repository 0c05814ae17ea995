package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildINES assembles an iNES image in memory.
func buildINES(prgChunks, chrChunks, flags6, flags7 byte, trainer, prg, chr []byte) []byte {
	var buf bytes.Buffer

	buf.Write([]byte("NES\x1a"))
	buf.Write([]byte{prgChunks, chrChunks, flags6, flags7})
	buf.Write(make([]byte, 8)) // prg ram size, tv system, padding
	buf.Write(trainer)
	buf.Write(prg)
	buf.Write(chr)

	return buf.Bytes()
}

// testCartridge builds a mapper-0 cartridge around the given PRG contents.
// A nil chr leaves the cartridge with character RAM.
func testCartridge(t *testing.T, prg, chr []byte) *Cartridge {
	t.Helper()

	prgChunks := byte(len(prg) / (16 * 1024))
	chrChunks := byte(len(chr) / (8 * 1024))

	img := buildINES(prgChunks, chrChunks, 0x00, 0x00, nil, prg, chr)
	cart, err := NewCartridgeFromReader(bytes.NewReader(img))
	require.NoError(t, err)

	return cart
}

func TestNewCartridge(t *testing.T) {
	prg := make([]byte, 32*1024)
	prg[0x0000] = 0x11
	prg[0x7FFF] = 0x22
	chr := make([]byte, 8*1024)
	chr[0x0123] = 0x33

	img := buildINES(2, 1, 0x01, 0x00, nil, prg, chr)
	cart, err := NewCartridgeFromReader(bytes.NewReader(img))
	require.NoError(t, err)

	assert.Equal(t, byte(0), cart.MapperId)
	assert.Equal(t, Vertical, cart.Mirror)
	assert.Len(t, cart.PrgMem, 32*1024)
	assert.Len(t, cart.ChrMem, 8*1024)

	// Two PRG banks map the full 0x8000-0xFFFF window.
	data, ok := cart.CpuRead(0x8000)
	require.True(t, ok)
	assert.Equal(t, byte(0x11), data)

	data, ok = cart.CpuRead(0xFFFF)
	require.True(t, ok)
	assert.Equal(t, byte(0x22), data)

	data, ok = cart.PpuRead(0x0123)
	require.True(t, ok)
	assert.Equal(t, byte(0x33), data)
}

func TestCartridgeHorizontalMirrorDefault(t *testing.T) {
	img := buildINES(1, 0, 0x00, 0x00, nil, make([]byte, 16*1024), nil)
	cart, err := NewCartridgeFromReader(bytes.NewReader(img))
	require.NoError(t, err)

	assert.Equal(t, Horizontal, cart.Mirror)
}

func TestCartridgeMapperIdNibbles(t *testing.T) {
	// Mapper low nibble from flags6 bits 4-7, high nibble from flags7.
	img := buildINES(1, 0, 0x20, 0x00, nil, make([]byte, 16*1024), nil)
	cart, err := NewCartridgeFromReader(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, byte(2), cart.MapperId)

	img = buildINES(1, 0, 0x00, 0x70, nil, make([]byte, 16*1024), nil)
	_, err = NewCartridgeFromReader(bytes.NewReader(img))
	assert.Error(t, err, "mapper 112 is not supported")
}

func TestCartridgeSkipsTrainer(t *testing.T) {
	prg := make([]byte, 16*1024)
	prg[0x0000] = 0xAA
	trainer := bytes.Repeat([]byte{0xFF}, 512)

	img := buildINES(1, 0, 0x04, 0x00, trainer, prg, nil)
	cart, err := NewCartridgeFromReader(bytes.NewReader(img))
	require.NoError(t, err)

	data, ok := cart.CpuRead(0x8000)
	require.True(t, ok)
	assert.Equal(t, byte(0xAA), data, "PRG data must start after the trainer")
}

func TestCartridgeShortHeader(t *testing.T) {
	_, err := NewCartridgeFromReader(bytes.NewReader([]byte("NES\x1a\x01")))
	assert.Error(t, err)
}

func TestCartridgeShortPrgZeroFilled(t *testing.T) {
	// Header promises 16KB of PRG, only 8 bytes follow.
	img := buildINES(1, 0, 0x00, 0x00, nil, []byte{1, 2, 3, 4, 5, 6, 7, 8}, nil)
	cart, err := NewCartridgeFromReader(bytes.NewReader(img))
	require.NoError(t, err, "short payload is only a warning")

	assert.Len(t, cart.PrgMem, 16*1024)
	assert.Equal(t, byte(1), cart.PrgMem[0])
	assert.Equal(t, byte(0), cart.PrgMem[8], "missing tail stays zero-filled")
}

func TestCartridgeChrRamWritable(t *testing.T) {
	cart := testCartridge(t, make([]byte, 16*1024), nil)

	require.True(t, cart.PpuWrite(0x0040, 0x7E), "zero CHR banks means character RAM")

	data, ok := cart.PpuRead(0x0040)
	require.True(t, ok)
	assert.Equal(t, byte(0x7E), data)
}

func TestCartridgeChrRomNotWritable(t *testing.T) {
	cart := testCartridge(t, make([]byte, 16*1024), make([]byte, 8*1024))

	assert.False(t, cart.PpuWrite(0x0040, 0x7E))
}

func TestCartridgeDeclinesOutsideWindow(t *testing.T) {
	cart := testCartridge(t, make([]byte, 16*1024), nil)

	_, ok := cart.CpuRead(0x4020)
	assert.False(t, ok, "NROM begins claiming at 0x8000")

	assert.False(t, cart.CpuWrite(0x8000, 0x12), "PRG ROM declines CPU writes")
}
