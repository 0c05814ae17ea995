package nes

// AddressingMode tags tell the fetch/write-back logic and the disassembler
// how a table entry resolves its operand.
type AddressingMode int

const (
	IMP AddressingMode = iota
	ACC
	IMM
	REL
	ZP0
	ZPX
	ZPY
	ABS
	ABX
	ABY
	IND
	IZX
	IZY
)

// Instruction is one entry of the 256-entry decode table: mnemonic, the
// operation and addressing routines, the addressing tag, and the base cycle
// cost. Both routines return 1 when an extra cycle may apply; the instruction
// pays it only when both agree.
type Instruction struct {
	Name     string
	Execute  func() byte
	AddrMode func() byte
	Mode     AddressingMode
	Cycles   byte
}

// newInstructionTable builds the full opcode lookup, indexed by opcode byte.
// Mnemonics starting with '*' are unofficial: the *NOP family and *SBC (0xEB)
// execute, the rest only consume their operand bytes and cycles. "XXX" marks
// opcodes that jam a real CPU.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
// and https://www.nesdev.org/wiki/CPU_unofficial_opcodes
func (cpu *Cpu6502) newInstructionTable() [16 * 16]Instruction {
	return [16 * 16]Instruction{
		{"BRK", cpu.opBRK, cpu.amIMP, IMP, 7}, {"ORA", cpu.opORA, cpu.amIZX, IZX, 6}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*SLO", cpu.opXXX, cpu.amIZX, IZX, 8}, {"*NOP", cpu.opNOP, cpu.amZP0, ZP0, 3}, {"ORA", cpu.opORA, cpu.amZP0, ZP0, 3}, {"ASL", cpu.opASL, cpu.amZP0, ZP0, 5}, {"*SLO", cpu.opXXX, cpu.amZP0, ZP0, 5}, {"PHP", cpu.opPHP, cpu.amIMP, IMP, 3}, {"ORA", cpu.opORA, cpu.amIMM, IMM, 2}, {"ASL", cpu.opASL, cpu.amACC, ACC, 2}, {"*ANC", cpu.opXXX, cpu.amIMM, IMM, 2}, {"*NOP", cpu.opNOP, cpu.amABS, ABS, 4}, {"ORA", cpu.opORA, cpu.amABS, ABS, 4}, {"ASL", cpu.opASL, cpu.amABS, ABS, 6}, {"*SLO", cpu.opXXX, cpu.amABS, ABS, 6},

		{"BPL", cpu.opBPL, cpu.amREL, REL, 2}, {"ORA", cpu.opORA, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*SLO", cpu.opXXX, cpu.amIZY, IZY, 8}, {"*NOP", cpu.opNOP, cpu.amZPX, ZPX, 4}, {"ORA", cpu.opORA, cpu.amZPX, ZPX, 4}, {"ASL", cpu.opASL, cpu.amZPX, ZPX, 6}, {"*SLO", cpu.opXXX, cpu.amZPX, ZPX, 6}, {"CLC", cpu.opCLC, cpu.amIMP, IMP, 2}, {"ORA", cpu.opORA, cpu.amABY, ABY, 4}, {"*NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*SLO", cpu.opXXX, cpu.amABY, ABY, 7}, {"*NOP", cpu.opNOP, cpu.amABX, ABX, 4}, {"ORA", cpu.opORA, cpu.amABX, ABX, 4}, {"ASL", cpu.opASL, cpu.amABX, ABX, 7}, {"*SLO", cpu.opXXX, cpu.amABX, ABX, 7},

		{"JSR", cpu.opJSR, cpu.amABS, ABS, 6}, {"AND", cpu.opAND, cpu.amIZX, IZX, 6}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*RLA", cpu.opXXX, cpu.amIZX, IZX, 8}, {"BIT", cpu.opBIT, cpu.amZP0, ZP0, 3}, {"AND", cpu.opAND, cpu.amZP0, ZP0, 3}, {"ROL", cpu.opROL, cpu.amZP0, ZP0, 5}, {"*RLA", cpu.opXXX, cpu.amZP0, ZP0, 5}, {"PLP", cpu.opPLP, cpu.amIMP, IMP, 4}, {"AND", cpu.opAND, cpu.amIMM, IMM, 2}, {"ROL", cpu.opROL, cpu.amACC, ACC, 2}, {"*ANC", cpu.opXXX, cpu.amIMM, IMM, 2}, {"BIT", cpu.opBIT, cpu.amABS, ABS, 4}, {"AND", cpu.opAND, cpu.amABS, ABS, 4}, {"ROL", cpu.opROL, cpu.amABS, ABS, 6}, {"*RLA", cpu.opXXX, cpu.amABS, ABS, 6},

		{"BMI", cpu.opBMI, cpu.amREL, REL, 2}, {"AND", cpu.opAND, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*RLA", cpu.opXXX, cpu.amIZY, IZY, 8}, {"*NOP", cpu.opNOP, cpu.amZPX, ZPX, 4}, {"AND", cpu.opAND, cpu.amZPX, ZPX, 4}, {"ROL", cpu.opROL, cpu.amZPX, ZPX, 6}, {"*RLA", cpu.opXXX, cpu.amZPX, ZPX, 6}, {"SEC", cpu.opSEC, cpu.amIMP, IMP, 2}, {"AND", cpu.opAND, cpu.amABY, ABY, 4}, {"*NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*RLA", cpu.opXXX, cpu.amABY, ABY, 7}, {"*NOP", cpu.opNOP, cpu.amABX, ABX, 4}, {"AND", cpu.opAND, cpu.amABX, ABX, 4}, {"ROL", cpu.opROL, cpu.amABX, ABX, 7}, {"*RLA", cpu.opXXX, cpu.amABX, ABX, 7},

		{"RTI", cpu.opRTI, cpu.amIMP, IMP, 6}, {"EOR", cpu.opEOR, cpu.amIZX, IZX, 6}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*SRE", cpu.opXXX, cpu.amIZX, IZX, 8}, {"*NOP", cpu.opNOP, cpu.amZP0, ZP0, 3}, {"EOR", cpu.opEOR, cpu.amZP0, ZP0, 3}, {"LSR", cpu.opLSR, cpu.amZP0, ZP0, 5}, {"*SRE", cpu.opXXX, cpu.amZP0, ZP0, 5}, {"PHA", cpu.opPHA, cpu.amIMP, IMP, 3}, {"EOR", cpu.opEOR, cpu.amIMM, IMM, 2}, {"LSR", cpu.opLSR, cpu.amACC, ACC, 2}, {"*ALR", cpu.opXXX, cpu.amIMM, IMM, 2}, {"JMP", cpu.opJMP, cpu.amABS, ABS, 3}, {"EOR", cpu.opEOR, cpu.amABS, ABS, 4}, {"LSR", cpu.opLSR, cpu.amABS, ABS, 6}, {"*SRE", cpu.opXXX, cpu.amABS, ABS, 6},

		{"BVC", cpu.opBVC, cpu.amREL, REL, 2}, {"EOR", cpu.opEOR, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*SRE", cpu.opXXX, cpu.amIZY, IZY, 8}, {"*NOP", cpu.opNOP, cpu.amZPX, ZPX, 4}, {"EOR", cpu.opEOR, cpu.amZPX, ZPX, 4}, {"LSR", cpu.opLSR, cpu.amZPX, ZPX, 6}, {"*SRE", cpu.opXXX, cpu.amZPX, ZPX, 6}, {"CLI", cpu.opCLI, cpu.amIMP, IMP, 2}, {"EOR", cpu.opEOR, cpu.amABY, ABY, 4}, {"*NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*SRE", cpu.opXXX, cpu.amABY, ABY, 7}, {"*NOP", cpu.opNOP, cpu.amABX, ABX, 4}, {"EOR", cpu.opEOR, cpu.amABX, ABX, 4}, {"LSR", cpu.opLSR, cpu.amABX, ABX, 7}, {"*SRE", cpu.opXXX, cpu.amABX, ABX, 7},

		{"RTS", cpu.opRTS, cpu.amIMP, IMP, 6}, {"ADC", cpu.opADC, cpu.amIZX, IZX, 6}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*RRA", cpu.opXXX, cpu.amIZX, IZX, 8}, {"*NOP", cpu.opNOP, cpu.amZP0, ZP0, 3}, {"ADC", cpu.opADC, cpu.amZP0, ZP0, 3}, {"ROR", cpu.opROR, cpu.amZP0, ZP0, 5}, {"*RRA", cpu.opXXX, cpu.amZP0, ZP0, 5}, {"PLA", cpu.opPLA, cpu.amIMP, IMP, 4}, {"ADC", cpu.opADC, cpu.amIMM, IMM, 2}, {"ROR", cpu.opROR, cpu.amACC, ACC, 2}, {"*ARR", cpu.opXXX, cpu.amIMM, IMM, 2}, {"JMP", cpu.opJMP, cpu.amIND, IND, 5}, {"ADC", cpu.opADC, cpu.amABS, ABS, 4}, {"ROR", cpu.opROR, cpu.amABS, ABS, 6}, {"*RRA", cpu.opXXX, cpu.amABS, ABS, 6},

		{"BVS", cpu.opBVS, cpu.amREL, REL, 2}, {"ADC", cpu.opADC, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*RRA", cpu.opXXX, cpu.amIZY, IZY, 8}, {"*NOP", cpu.opNOP, cpu.amZPX, ZPX, 4}, {"ADC", cpu.opADC, cpu.amZPX, ZPX, 4}, {"ROR", cpu.opROR, cpu.amZPX, ZPX, 6}, {"*RRA", cpu.opXXX, cpu.amZPX, ZPX, 6}, {"SEI", cpu.opSEI, cpu.amIMP, IMP, 2}, {"ADC", cpu.opADC, cpu.amABY, ABY, 4}, {"*NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*RRA", cpu.opXXX, cpu.amABY, ABY, 7}, {"*NOP", cpu.opNOP, cpu.amABX, ABX, 4}, {"ADC", cpu.opADC, cpu.amABX, ABX, 4}, {"ROR", cpu.opROR, cpu.amABX, ABX, 7}, {"*RRA", cpu.opXXX, cpu.amABX, ABX, 7},

		{"*NOP", cpu.opNOP, cpu.amIMM, IMM, 2}, {"STA", cpu.opSTA, cpu.amIZX, IZX, 6}, {"*NOP", cpu.opNOP, cpu.amIMM, IMM, 2}, {"*SAX", cpu.opXXX, cpu.amIZX, IZX, 6}, {"STY", cpu.opSTY, cpu.amZP0, ZP0, 3}, {"STA", cpu.opSTA, cpu.amZP0, ZP0, 3}, {"STX", cpu.opSTX, cpu.amZP0, ZP0, 3}, {"*SAX", cpu.opXXX, cpu.amZP0, ZP0, 3}, {"DEY", cpu.opDEY, cpu.amIMP, IMP, 2}, {"*NOP", cpu.opNOP, cpu.amIMM, IMM, 2}, {"TXA", cpu.opTXA, cpu.amIMP, IMP, 2}, {"*XAA", cpu.opXXX, cpu.amIMM, IMM, 2}, {"STY", cpu.opSTY, cpu.amABS, ABS, 4}, {"STA", cpu.opSTA, cpu.amABS, ABS, 4}, {"STX", cpu.opSTX, cpu.amABS, ABS, 4}, {"*SAX", cpu.opXXX, cpu.amABS, ABS, 4},

		{"BCC", cpu.opBCC, cpu.amREL, REL, 2}, {"STA", cpu.opSTA, cpu.amIZY, IZY, 6}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*AHX", cpu.opXXX, cpu.amIZY, IZY, 6}, {"STY", cpu.opSTY, cpu.amZPX, ZPX, 4}, {"STA", cpu.opSTA, cpu.amZPX, ZPX, 4}, {"STX", cpu.opSTX, cpu.amZPY, ZPY, 4}, {"*SAX", cpu.opXXX, cpu.amZPY, ZPY, 4}, {"TYA", cpu.opTYA, cpu.amIMP, IMP, 2}, {"STA", cpu.opSTA, cpu.amABY, ABY, 5}, {"TXS", cpu.opTXS, cpu.amIMP, IMP, 2}, {"*TAS", cpu.opXXX, cpu.amABY, ABY, 5}, {"*SHY", cpu.opXXX, cpu.amABX, ABX, 5}, {"STA", cpu.opSTA, cpu.amABX, ABX, 5}, {"*SHX", cpu.opXXX, cpu.amABY, ABY, 5}, {"*AHX", cpu.opXXX, cpu.amABY, ABY, 5},

		{"LDY", cpu.opLDY, cpu.amIMM, IMM, 2}, {"LDA", cpu.opLDA, cpu.amIZX, IZX, 6}, {"LDX", cpu.opLDX, cpu.amIMM, IMM, 2}, {"*LAX", cpu.opXXX, cpu.amIZX, IZX, 6}, {"LDY", cpu.opLDY, cpu.amZP0, ZP0, 3}, {"LDA", cpu.opLDA, cpu.amZP0, ZP0, 3}, {"LDX", cpu.opLDX, cpu.amZP0, ZP0, 3}, {"*LAX", cpu.opXXX, cpu.amZP0, ZP0, 3}, {"TAY", cpu.opTAY, cpu.amIMP, IMP, 2}, {"LDA", cpu.opLDA, cpu.amIMM, IMM, 2}, {"TAX", cpu.opTAX, cpu.amIMP, IMP, 2}, {"*LAX", cpu.opXXX, cpu.amIMM, IMM, 2}, {"LDY", cpu.opLDY, cpu.amABS, ABS, 4}, {"LDA", cpu.opLDA, cpu.amABS, ABS, 4}, {"LDX", cpu.opLDX, cpu.amABS, ABS, 4}, {"*LAX", cpu.opXXX, cpu.amABS, ABS, 4},

		{"BCS", cpu.opBCS, cpu.amREL, REL, 2}, {"LDA", cpu.opLDA, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*LAX", cpu.opXXX, cpu.amIZY, IZY, 5}, {"LDY", cpu.opLDY, cpu.amZPX, ZPX, 4}, {"LDA", cpu.opLDA, cpu.amZPX, ZPX, 4}, {"LDX", cpu.opLDX, cpu.amZPY, ZPY, 4}, {"*LAX", cpu.opXXX, cpu.amZPY, ZPY, 4}, {"CLV", cpu.opCLV, cpu.amIMP, IMP, 2}, {"LDA", cpu.opLDA, cpu.amABY, ABY, 4}, {"TSX", cpu.opTSX, cpu.amIMP, IMP, 2}, {"*LAS", cpu.opXXX, cpu.amABY, ABY, 4}, {"LDY", cpu.opLDY, cpu.amABX, ABX, 4}, {"LDA", cpu.opLDA, cpu.amABX, ABX, 4}, {"LDX", cpu.opLDX, cpu.amABY, ABY, 4}, {"*LAX", cpu.opXXX, cpu.amABY, ABY, 4},

		{"CPY", cpu.opCPY, cpu.amIMM, IMM, 2}, {"CMP", cpu.opCMP, cpu.amIZX, IZX, 6}, {"*NOP", cpu.opNOP, cpu.amIMM, IMM, 2}, {"*DCP", cpu.opXXX, cpu.amIZX, IZX, 8}, {"CPY", cpu.opCPY, cpu.amZP0, ZP0, 3}, {"CMP", cpu.opCMP, cpu.amZP0, ZP0, 3}, {"DEC", cpu.opDEC, cpu.amZP0, ZP0, 5}, {"*DCP", cpu.opXXX, cpu.amZP0, ZP0, 5}, {"INY", cpu.opINY, cpu.amIMP, IMP, 2}, {"CMP", cpu.opCMP, cpu.amIMM, IMM, 2}, {"DEX", cpu.opDEX, cpu.amIMP, IMP, 2}, {"*AXS", cpu.opXXX, cpu.amIMM, IMM, 2}, {"CPY", cpu.opCPY, cpu.amABS, ABS, 4}, {"CMP", cpu.opCMP, cpu.amABS, ABS, 4}, {"DEC", cpu.opDEC, cpu.amABS, ABS, 6}, {"*DCP", cpu.opXXX, cpu.amABS, ABS, 6},

		{"BNE", cpu.opBNE, cpu.amREL, REL, 2}, {"CMP", cpu.opCMP, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*DCP", cpu.opXXX, cpu.amIZY, IZY, 8}, {"*NOP", cpu.opNOP, cpu.amZPX, ZPX, 4}, {"CMP", cpu.opCMP, cpu.amZPX, ZPX, 4}, {"DEC", cpu.opDEC, cpu.amZPX, ZPX, 6}, {"*DCP", cpu.opXXX, cpu.amZPX, ZPX, 6}, {"CLD", cpu.opCLD, cpu.amIMP, IMP, 2}, {"CMP", cpu.opCMP, cpu.amABY, ABY, 4}, {"*NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*DCP", cpu.opXXX, cpu.amABY, ABY, 7}, {"*NOP", cpu.opNOP, cpu.amABX, ABX, 4}, {"CMP", cpu.opCMP, cpu.amABX, ABX, 4}, {"DEC", cpu.opDEC, cpu.amABX, ABX, 7}, {"*DCP", cpu.opXXX, cpu.amABX, ABX, 7},

		{"CPX", cpu.opCPX, cpu.amIMM, IMM, 2}, {"SBC", cpu.opSBC, cpu.amIZX, IZX, 6}, {"*NOP", cpu.opNOP, cpu.amIMM, IMM, 2}, {"*ISB", cpu.opXXX, cpu.amIZX, IZX, 8}, {"CPX", cpu.opCPX, cpu.amZP0, ZP0, 3}, {"SBC", cpu.opSBC, cpu.amZP0, ZP0, 3}, {"INC", cpu.opINC, cpu.amZP0, ZP0, 5}, {"*ISB", cpu.opXXX, cpu.amZP0, ZP0, 5}, {"INX", cpu.opINX, cpu.amIMP, IMP, 2}, {"SBC", cpu.opSBC, cpu.amIMM, IMM, 2}, {"NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*SBC", cpu.opSBC, cpu.amIMM, IMM, 2}, {"CPX", cpu.opCPX, cpu.amABS, ABS, 4}, {"SBC", cpu.opSBC, cpu.amABS, ABS, 4}, {"INC", cpu.opINC, cpu.amABS, ABS, 6}, {"*ISB", cpu.opXXX, cpu.amABS, ABS, 6},

		{"BEQ", cpu.opBEQ, cpu.amREL, REL, 2}, {"SBC", cpu.opSBC, cpu.amIZY, IZY, 5}, {"XXX", cpu.opXXX, cpu.amIMP, IMP, 2}, {"*ISB", cpu.opXXX, cpu.amIZY, IZY, 8}, {"*NOP", cpu.opNOP, cpu.amZPX, ZPX, 4}, {"SBC", cpu.opSBC, cpu.amZPX, ZPX, 4}, {"INC", cpu.opINC, cpu.amZPX, ZPX, 6}, {"*ISB", cpu.opXXX, cpu.amZPX, ZPX, 6}, {"SED", cpu.opSED, cpu.amIMP, IMP, 2}, {"SBC", cpu.opSBC, cpu.amABY, ABY, 4}, {"*NOP", cpu.opNOP, cpu.amIMP, IMP, 2}, {"*ISB", cpu.opXXX, cpu.amABY, ABY, 7}, {"*NOP", cpu.opNOP, cpu.amABX, ABX, 4}, {"SBC", cpu.opSBC, cpu.amABX, ABX, 4}, {"INC", cpu.opINC, cpu.amABX, ABX, 7}, {"*ISB", cpu.opXXX, cpu.amABX, ABX, 7},
	}
}
