package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper000SingleBankMirrors(t *testing.T) {
	m := NewMapper000(1, 1)

	mapped, ok := m.CpuMapRead(0x8000)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0000), mapped)

	// The upper window mirrors the single 16KB bank.
	mapped, ok = m.CpuMapRead(0xC123)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0123), mapped)
}

func TestMapper000DoubleBankLinear(t *testing.T) {
	m := NewMapper000(2, 1)

	mapped, ok := m.CpuMapRead(0xC123)
	require.True(t, ok)
	assert.Equal(t, uint32(0x4123), mapped)
}

func TestMapper000Declines(t *testing.T) {
	m := NewMapper000(1, 1)

	_, ok := m.CpuMapRead(0x7FFF)
	assert.False(t, ok)

	_, ok = m.CpuMapWrite(0x8000, 0x00)
	assert.False(t, ok)

	_, ok = m.PpuMapRead(0x2000)
	assert.False(t, ok)

	_, ok = m.PpuMapWrite(0x0000)
	assert.False(t, ok, "CHR ROM declines writes")
}

func TestMapper000ChrRam(t *testing.T) {
	m := NewMapper000(1, 0)

	mapped, ok := m.PpuMapWrite(0x0100)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0100), mapped)
}

func TestMapper002BankSelect(t *testing.T) {
	m := NewMapper002(8, 0)

	// Power-on: bank 0 in the low window, last bank fixed in the high one.
	mapped, ok := m.CpuMapRead(0x8010)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0010), mapped)

	mapped, ok = m.CpuMapRead(0xC010)
	require.True(t, ok)
	assert.Equal(t, uint32(7*0x4000+0x0010), mapped)

	// Writing into ROM space latches the bank register.
	_, ok = m.CpuMapWrite(0x8000, 0x03)
	assert.False(t, ok, "the write itself lands nowhere")

	mapped, ok = m.CpuMapRead(0x8010)
	require.True(t, ok)
	assert.Equal(t, uint32(3*0x4000+0x0010), mapped)

	// The fixed window is unaffected by the bank register.
	mapped, ok = m.CpuMapRead(0xC010)
	require.True(t, ok)
	assert.Equal(t, uint32(7*0x4000+0x0010), mapped)
}

func TestMapper002Reset(t *testing.T) {
	m := NewMapper002(4, 0)

	m.CpuMapWrite(0x8000, 0x02)
	m.Reset()

	mapped, ok := m.CpuMapRead(0x8000)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0000), mapped)
}

func TestMapper002BankWraps(t *testing.T) {
	m := NewMapper002(4, 0)

	// Selecting past the last bank wraps modulo the bank count.
	m.CpuMapWrite(0x8000, 0x05)

	mapped, ok := m.CpuMapRead(0x8000)
	require.True(t, ok)
	assert.Equal(t, uint32(1*0x4000), mapped)
}
