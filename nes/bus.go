package nes

import (
	"log"

	"github.com/faiface/pixel/pixelgl"
)

// Main bus used by the CPU. Routes every read and write to system RAM, the
// PPU register window, or the cartridge.
type Bus struct {
	Cpu  *Cpu6502        // NES CPU.
	Ppu  *Ppu            // Picture processing unit (register window only).
	Cart *Cartridge      // NES Cartridge.
	Ram  [2 * 1024]byte  // 2KB system RAM, mirrored through 0x1FFF.
	Disp *Display

	ClockCount int
}

const (
	// RAM
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF // mirror every 2KB.

	// PPU
	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007 // mirror every 8 bytes.
)

func NewBus() *Bus {
	// Create a new CPU. Here we use a 6502.
	cpu := NewCpu6502()

	// Attach devices to the bus.
	bus := &Bus{
		Cpu: cpu,
		Ppu: NewPpu(),
	}

	// Connect this bus to the cpu.
	cpu.ConnectBus(bus)

	return bus
}

// CpuRead routes a read from the CPU. The cartridge gets first claim on the
// address; unclaimed reads return the open-bus value 0. readOnly requests
// peek semantics, leaving devices with read side effects untouched.
func (b *Bus) CpuRead(addr uint16, readOnly bool) byte {
	var data byte

	if b.Cart != nil {
		if d, ok := b.Cart.CpuRead(addr); ok {
			return d
		}
	}

	if addr >= ramMinAddr && addr <= ramMaxAddr {
		data = b.Ram[addr&ramMirror]
	} else if addr >= ppuMinAddr && addr <= ppuMaxAddr {
		data = b.Ppu.cpuRead(addr&ppuMirror, readOnly)
	}

	return data
}

// CpuWrite routes a write from the CPU; the cartridge gets first claim.
// Unclaimed writes are dropped.
func (b *Bus) CpuWrite(addr uint16, data byte) {
	if b.Cart != nil && b.Cart.CpuWrite(addr, data) {
		return
	}

	if addr >= ramMinAddr && addr <= ramMaxAddr {
		b.Ram[addr&ramMirror] = data
	} else if addr >= ppuMinAddr && addr <= ppuMaxAddr {
		b.Ppu.cpuWrite(addr&ppuMirror, data)
	}
}

// InsertCartridge connects a cartridge to both the CPU and PPU sides of the
// system.
func (b *Bus) InsertCartridge(cart *Cartridge) {
	b.Cart = cart
	b.Ppu.ConnectCartridge(cart)
}

// Reset the NES.
func (b *Bus) Reset() {
	if b.Cart != nil {
		b.Cart.Reset()
	}
	b.Cpu.Reset()
	b.Ppu.Reset()

	b.ClockCount = 0
}

// Clock advances the system by one PPU cycle. The CPU runs at a third of the
// PPU rate; a pending NMI is delivered at the next opportunity.
func (b *Bus) Clock() {
	b.Ppu.Clock()

	if b.ClockCount%3 == 0 {
		b.Cpu.Clock()
	}

	if b.Ppu.nmi {
		b.Ppu.nmi = false
		b.Cpu.Nmi()
	}

	b.ClockCount++
}

// Run opens the debug window and drives the emulator interactively:
// space steps one instruction, R resets, I and N raise the interrupt lines.
func (b *Bus) Run() {
	display := NewDisplay()
	b.Disp = display

	disassembly := b.Cpu.Disassemble(0x8000, 0xFFFF)

	for !display.Closed() {
		win := display.window

		if win.JustPressed(pixelgl.KeySpace) {
			b.Cpu.StepInstruction()
		}
		if win.JustPressed(pixelgl.KeyR) {
			b.Reset()
		}
		if win.JustPressed(pixelgl.KeyI) {
			b.Cpu.Irq()
		}
		if win.JustPressed(pixelgl.KeyN) {
			b.Cpu.Nmi()
		}

		display.WriteRegDebugString(b.cpuDebugString())
		display.WriteInstDebugString(b.disassemblyLines(disassembly, 10))
		display.Update()
	}
}

// CheckForNestestErrors reports the result codes nestest leaves in zero page.
func (b *Bus) CheckForNestestErrors() {
	if b.Ram[0x02] != 0x00 {
		log.Printf("nestest error %#X\n", b.Ram[0x02])
	}
	if b.Ram[0x03] != 0x00 {
		log.Printf("nestest error %#X\n", b.Ram[0x03])
	}
}
