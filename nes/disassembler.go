package nes

import (
	"bytes"
	"fmt"
)

// Disassemble the loaded 6502 program into human-readable CPU instructions
// mapped to their respective memory address.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (cpu *Cpu6502) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	// Current CPU instruction, disassembled
	var lineDiss bytes.Buffer
	var value, lo, hi byte

	// This needs to be bigger than uint16, to determine when larger than endAddr.
	addr := uint32(startAddr)

	disassembly := make(map[uint16]string)

	for addr <= uint32(endAddr) {
		// Instruction memory address
		lineAddr := uint16(addr)
		lineDiss.WriteString(fmt.Sprintf("$%04X: ", lineAddr))

		// Readable instruction name
		opcode := cpu.peek(uint16(addr))
		addr++
		inst := cpu.InstLookup[opcode]
		lineDiss.WriteString(fmt.Sprintf("%s ", inst.Name))

		switch inst.Mode {
		case IMP:
			lineDiss.WriteString("{IMP}")
		case ACC:
			lineDiss.WriteString("A {ACC}")
		case IMM:
			value = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("#$%02X {IMM}", value))
		case REL:
			value = cpu.peek(uint16(addr))
			addr++
			dest := uint16(addr) + uint16(value)
			if value&0x80 > 0 {
				dest -= 0x0100
			}
			lineDiss.WriteString(fmt.Sprintf("$%02X [$%04X] {REL}", value, dest))
		case ZP0:
			lo = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X {ZP0}", lo))
		case ZPX:
			lo = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X, X {ZPX}", lo))
		case ZPY:
			lo = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X, Y {ZPY}", lo))
		case ABS:
			lo = cpu.peek(uint16(addr))
			addr++
			hi = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X {ABS}", uint16(hi)<<8|uint16(lo)))
		case ABX:
			lo = cpu.peek(uint16(addr))
			addr++
			hi = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X, X {ABX}", uint16(hi)<<8|uint16(lo)))
		case ABY:
			lo = cpu.peek(uint16(addr))
			addr++
			hi = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X, Y {ABY}", uint16(hi)<<8|uint16(lo)))
		case IND:
			lo = cpu.peek(uint16(addr))
			addr++
			hi = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%04X) {IND}", uint16(hi)<<8|uint16(lo)))
		case IZX:
			lo = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X, X) {IZX}", lo))
		case IZY:
			lo = cpu.peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X), Y {IZY}", lo))
		}

		// Add to map
		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	return disassembly
}
