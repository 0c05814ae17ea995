package nes

import (
	"fmt"
	"strings"
)

// operandLength returns how many operand bytes follow an opcode.
func operandLength(mode AddressingMode) int {
	switch mode {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}

// Trace renders the state of the instruction about to execute in the nestest
// log layout: address, raw instruction bytes, mnemonic, registers, and the
// cumulative cycle count. All reads go through the bus in peek mode.
func (cpu *Cpu6502) Trace() string {
	opcode := cpu.peek(cpu.Pc)
	inst := cpu.InstLookup[opcode]

	var raw strings.Builder
	fmt.Fprintf(&raw, "%02X", opcode)
	for i := 1; i <= operandLength(inst.Mode); i++ {
		fmt.Fprintf(&raw, " %02X", cpu.peek(cpu.Pc+uint16(i)))
	}

	return fmt.Sprintf("%04X  %-8s %4s  A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		cpu.Pc, raw.String(), inst.Name,
		cpu.A, cpu.X, cpu.Y, cpu.Status, cpu.Sp, cpu.CycleCount)
}
