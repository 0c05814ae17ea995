package nes

// CPU instructions. Each instruction method returns 1 when it is willing to
// pay a page-crossing penalty cycle, 0 otherwise.

// Write a result back to where the operand came from: register A for the
// accumulator/implied forms of the shift instructions, memory otherwise.
func (cpu *Cpu6502) writeBack(result byte) {
	mode := cpu.InstLookup[cpu.Opcode].Mode
	if mode == IMP || mode == ACC {
		cpu.A = result
	} else {
		cpu.write(cpu.AddrAbs, result)
	}
}

// Taken branches share their cycle accounting: one extra cycle for taking the
// branch, another when the destination sits in a different page.
func (cpu *Cpu6502) branch() {
	cpu.Cycles++

	cpu.AddrAbs = cpu.Pc + cpu.AddrRel

	if cpu.AddrAbs&0xFF00 != cpu.Pc&0xFF00 {
		cpu.Cycles++
	}

	cpu.Pc = cpu.AddrAbs
}

// ADC - Add with Carry
func (cpu *Cpu6502) opADC() byte {
	cpu.fetch()

	// 16-bit to keep any carry.
	result := uint16(cpu.A) + uint16(cpu.Fetched) + uint16(cpu.getFlag(StatusFlagC))

	cpu.setFlag(StatusFlagC, result > 0xFF)
	cpu.setFlagsZN(byte(result))

	// Signed overflow: both addends shared a sign and the result's sign
	// differs.
	v := (uint16(cpu.A)^result)&(uint16(cpu.Fetched)^result)&0x80 != 0
	cpu.setFlag(StatusFlagV, v)

	cpu.A = byte(result)

	return 0x01
}

// AND - Logical AND
func (cpu *Cpu6502) opAND() byte {
	cpu.fetch()

	cpu.A &= cpu.Fetched
	cpu.setFlagsZN(cpu.A)

	return 0x01
}

// ASL - Arithmetic Shift Left
func (cpu *Cpu6502) opASL() byte {
	cpu.fetch()

	// Carry takes the bit shifted out.
	cpu.setFlag(StatusFlagC, cpu.Fetched&(1<<7) > 0)

	result := cpu.Fetched << 1
	cpu.setFlagsZN(result)
	cpu.writeBack(result)

	return 0x00
}

// BCC - Branch if Carry Clear
func (cpu *Cpu6502) opBCC() byte {
	if cpu.getFlag(StatusFlagC) == 0 {
		cpu.branch()
	}

	return 0x00
}

// BCS - Branch if Carry Set
func (cpu *Cpu6502) opBCS() byte {
	if cpu.getFlag(StatusFlagC) != 0 {
		cpu.branch()
	}

	return 0x00
}

// BEQ - Branch if Equal
func (cpu *Cpu6502) opBEQ() byte {
	if cpu.getFlag(StatusFlagZ) != 0 {
		cpu.branch()
	}

	return 0x00
}

// BIT - Bit Test
func (cpu *Cpu6502) opBIT() byte {
	cpu.fetch()

	cpu.setFlag(StatusFlagZ, cpu.A&cpu.Fetched == 0)
	cpu.setFlag(StatusFlagV, cpu.Fetched&(1<<6) > 0)
	cpu.setFlag(StatusFlagN, cpu.Fetched&(1<<7) > 0)

	return 0x00
}

// BMI - Branch if Minus
func (cpu *Cpu6502) opBMI() byte {
	if cpu.getFlag(StatusFlagN) != 0 {
		cpu.branch()
	}

	return 0x00
}

// BNE - Branch if Not Equal
func (cpu *Cpu6502) opBNE() byte {
	if cpu.getFlag(StatusFlagZ) == 0 {
		cpu.branch()
	}

	return 0x00
}

// BPL - Branch if Positive
func (cpu *Cpu6502) opBPL() byte {
	if cpu.getFlag(StatusFlagN) == 0 {
		cpu.branch()
	}

	return 0x00
}

// BRK - Force Interrupt. The stacked status carries B set; the in-register
// copy does not keep it.
// Reference: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
func (cpu *Cpu6502) opBRK() byte {
	cpu.Pc++

	cpu.setFlag(StatusFlagI, true)
	cpu.stackPushPc()

	cpu.stackPush(cpu.Status | byte(StatusFlagB) | byte(StatusFlagU))
	cpu.setFlag(StatusFlagB, false)

	cpu.Pc = cpu.readWord(irqVectAddr)

	return 0x00
}

// BVC - Branch if Overflow Clear
func (cpu *Cpu6502) opBVC() byte {
	if cpu.getFlag(StatusFlagV) == 0 {
		cpu.branch()
	}

	return 0x00
}

// BVS - Branch if Overflow Set
func (cpu *Cpu6502) opBVS() byte {
	if cpu.getFlag(StatusFlagV) != 0 {
		cpu.branch()
	}

	return 0x00
}

// CLC - Clear Carry Flag
func (cpu *Cpu6502) opCLC() byte {
	cpu.setFlag(StatusFlagC, false)

	return 0x00
}

// CLD - Clear Decimal Mode
func (cpu *Cpu6502) opCLD() byte {
	cpu.setFlag(StatusFlagD, false)

	return 0x00
}

// CLI - Clear Interrupt Disable
func (cpu *Cpu6502) opCLI() byte {
	cpu.setFlag(StatusFlagI, false)

	return 0x00
}

// CLV - Clear Overflow Flag
func (cpu *Cpu6502) opCLV() byte {
	cpu.setFlag(StatusFlagV, false)

	return 0x00
}

// CMP - Compare Accumulator
func (cpu *Cpu6502) opCMP() byte {
	cpu.fetch()

	cpu.setFlag(StatusFlagC, cpu.A >= cpu.Fetched)
	cpu.setFlagsZN(cpu.A - cpu.Fetched)

	return 0x01
}

// CPX - Compare X Register
func (cpu *Cpu6502) opCPX() byte {
	cpu.fetch()

	cpu.setFlag(StatusFlagC, cpu.X >= cpu.Fetched)
	cpu.setFlagsZN(cpu.X - cpu.Fetched)

	return 0x00
}

// CPY - Compare Y Register
func (cpu *Cpu6502) opCPY() byte {
	cpu.fetch()

	cpu.setFlag(StatusFlagC, cpu.Y >= cpu.Fetched)
	cpu.setFlagsZN(cpu.Y - cpu.Fetched)

	return 0x00
}

// DEC - Decrement Memory
func (cpu *Cpu6502) opDEC() byte {
	cpu.fetch()

	result := cpu.Fetched - 1
	cpu.write(cpu.AddrAbs, result)
	cpu.setFlagsZN(result)

	return 0x00
}

// DEX - Decrement X Register
func (cpu *Cpu6502) opDEX() byte {
	cpu.X--
	cpu.setFlagsZN(cpu.X)

	return 0x00
}

// DEY - Decrement Y Register
func (cpu *Cpu6502) opDEY() byte {
	cpu.Y--
	cpu.setFlagsZN(cpu.Y)

	return 0x00
}

// EOR - Exclusive OR
func (cpu *Cpu6502) opEOR() byte {
	cpu.fetch()

	cpu.A ^= cpu.Fetched
	cpu.setFlagsZN(cpu.A)

	return 0x01
}

// INC - Increment Memory
func (cpu *Cpu6502) opINC() byte {
	cpu.fetch()

	result := cpu.Fetched + 1
	cpu.write(cpu.AddrAbs, result)
	cpu.setFlagsZN(result)

	return 0x00
}

// INX - Increment X Register
func (cpu *Cpu6502) opINX() byte {
	cpu.X++
	cpu.setFlagsZN(cpu.X)

	return 0x00
}

// INY - Increment Y Register
func (cpu *Cpu6502) opINY() byte {
	cpu.Y++
	cpu.setFlagsZN(cpu.Y)

	return 0x00
}

// JMP - Jump
func (cpu *Cpu6502) opJMP() byte {
	cpu.Pc = cpu.AddrAbs

	return 0x00
}

// JSR - Jump to Subroutine. The stacked return address points at the last
// byte of the JSR instruction; RTS compensates.
func (cpu *Cpu6502) opJSR() byte {
	cpu.Pc--
	cpu.stackPushPc()

	cpu.Pc = cpu.AddrAbs

	return 0x00
}

// LDA - Load Accumulator
func (cpu *Cpu6502) opLDA() byte {
	cpu.fetch()

	cpu.A = cpu.Fetched
	cpu.setFlagsZN(cpu.A)

	return 0x01
}

// LDX - Load X Register
func (cpu *Cpu6502) opLDX() byte {
	cpu.fetch()

	cpu.X = cpu.Fetched
	cpu.setFlagsZN(cpu.X)

	return 0x01
}

// LDY - Load Y Register
func (cpu *Cpu6502) opLDY() byte {
	cpu.fetch()

	cpu.Y = cpu.Fetched
	cpu.setFlagsZN(cpu.Y)

	return 0x01
}

// LSR - Logical Shift Right
func (cpu *Cpu6502) opLSR() byte {
	cpu.fetch()

	cpu.setFlag(StatusFlagC, cpu.Fetched&0x01 > 0)

	result := cpu.Fetched >> 1
	cpu.setFlagsZN(result)
	cpu.writeBack(result)

	return 0x00
}

// NOP - No Operation. The unofficial variants still resolve (and read
// through) their addressing mode, so the abs,X family can pay a page cross.
func (cpu *Cpu6502) opNOP() byte {
	cpu.fetch()

	return 0x01
}

// ORA - Logical Inclusive OR
func (cpu *Cpu6502) opORA() byte {
	cpu.fetch()

	cpu.A |= cpu.Fetched
	cpu.setFlagsZN(cpu.A)

	return 0x01
}

// PHA - Push Accumulator
func (cpu *Cpu6502) opPHA() byte {
	cpu.stackPush(cpu.A)

	return 0x00
}

// PHP - Push Processor Status. The stacked copy carries B and U set.
// Reference: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
func (cpu *Cpu6502) opPHP() byte {
	cpu.stackPush(cpu.Status | byte(StatusFlagB) | byte(StatusFlagU))

	cpu.setFlag(StatusFlagB, false)
	cpu.setFlag(StatusFlagU, false)

	return 0x00
}

// PLA - Pull Accumulator
func (cpu *Cpu6502) opPLA() byte {
	cpu.A = cpu.stackPop()
	cpu.setFlagsZN(cpu.A)

	return 0x00
}

// PLP - Pull Processor Status. B is not a real flag; the in-register copy
// keeps it clear and U stays set.
func (cpu *Cpu6502) opPLP() byte {
	cpu.Status = cpu.stackPop()

	cpu.setFlag(StatusFlagU, true)
	cpu.setFlag(StatusFlagB, false)

	return 0x00
}

// ROL - Rotate Left
func (cpu *Cpu6502) opROL() byte {
	cpu.fetch()

	carry := cpu.getFlag(StatusFlagC)
	cpu.setFlag(StatusFlagC, cpu.Fetched&(1<<7) > 0)

	result := cpu.Fetched<<1 | carry
	cpu.setFlagsZN(result)
	cpu.writeBack(result)

	return 0x00
}

// ROR - Rotate Right
func (cpu *Cpu6502) opROR() byte {
	cpu.fetch()

	carry := cpu.getFlag(StatusFlagC)
	cpu.setFlag(StatusFlagC, cpu.Fetched&0x01 > 0)

	result := cpu.Fetched>>1 | carry<<7
	cpu.setFlagsZN(result)
	cpu.writeBack(result)

	return 0x00
}

// RTI - Return from Interrupt
func (cpu *Cpu6502) opRTI() byte {
	cpu.Status = cpu.stackPop()
	cpu.Status &^= byte(StatusFlagB)
	cpu.Status &^= byte(StatusFlagU)

	lo := cpu.stackPop()
	hi := cpu.stackPop()
	cpu.Pc = uint16(hi)<<8 | uint16(lo)

	return 0x00
}

// RTS - Return from Subroutine
func (cpu *Cpu6502) opRTS() byte {
	lo := cpu.stackPop()
	hi := cpu.stackPop()
	cpu.Pc = uint16(hi)<<8 | uint16(lo)

	cpu.Pc++

	return 0x00
}

// SBC - Subtract with Carry. Implemented as ADC of the operand's complement.
func (cpu *Cpu6502) opSBC() byte {
	cpu.fetch()

	value := uint16(cpu.Fetched) ^ 0x00FF

	result := uint16(cpu.A) + value + uint16(cpu.getFlag(StatusFlagC))

	cpu.setFlag(StatusFlagC, result > 0xFF)
	cpu.setFlagsZN(byte(result))

	v := (uint16(cpu.A)^result)&(value^result)&0x80 != 0
	cpu.setFlag(StatusFlagV, v)

	cpu.A = byte(result)

	return 0x01
}

// SEC - Set Carry Flag
func (cpu *Cpu6502) opSEC() byte {
	cpu.setFlag(StatusFlagC, true)

	return 0x00
}

// SED - Set Decimal Flag
func (cpu *Cpu6502) opSED() byte {
	cpu.setFlag(StatusFlagD, true)

	return 0x00
}

// SEI - Set Interrupt Disable
func (cpu *Cpu6502) opSEI() byte {
	cpu.setFlag(StatusFlagI, true)

	return 0x00
}

// STA - Store Accumulator
func (cpu *Cpu6502) opSTA() byte {
	cpu.write(cpu.AddrAbs, cpu.A)

	return 0x00
}

// STX - Store X Register
func (cpu *Cpu6502) opSTX() byte {
	cpu.write(cpu.AddrAbs, cpu.X)

	return 0x00
}

// STY - Store Y Register
func (cpu *Cpu6502) opSTY() byte {
	cpu.write(cpu.AddrAbs, cpu.Y)

	return 0x00
}

// TAX - Transfer Accumulator to X
func (cpu *Cpu6502) opTAX() byte {
	cpu.X = cpu.A
	cpu.setFlagsZN(cpu.X)

	return 0x00
}

// TAY - Transfer Accumulator to Y
func (cpu *Cpu6502) opTAY() byte {
	cpu.Y = cpu.A
	cpu.setFlagsZN(cpu.Y)

	return 0x00
}

// TSX - Transfer Stack Pointer to X
func (cpu *Cpu6502) opTSX() byte {
	cpu.X = cpu.Sp
	cpu.setFlagsZN(cpu.X)

	return 0x00
}

// TXA - Transfer X to Accumulator
func (cpu *Cpu6502) opTXA() byte {
	cpu.A = cpu.X
	cpu.setFlagsZN(cpu.A)

	return 0x00
}

// TXS - Transfer X to Stack Pointer
func (cpu *Cpu6502) opTXS() byte {
	cpu.Sp = cpu.X

	return 0x00
}

// TYA - Transfer Y to Accumulator
func (cpu *Cpu6502) opTYA() byte {
	cpu.A = cpu.Y
	cpu.setFlagsZN(cpu.A)

	return 0x00
}

// Catch-all for the remaining unofficial opcodes: no effect on state, the
// tabulated cycle cost still applies.
func (cpu *Cpu6502) opXXX() byte {
	return 0x00
}
