package nes

import (
	"bytes"
	"fmt"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Display is the debug window: CPU registers, a disassembly view around the
// program counter, and the key legend. It is the only rendering surface the
// emulator has.
type Display struct {
	window *pixelgl.Window

	debugAtlas    *text.Atlas // Used to load the font
	debugRegText  *text.Text  // CPU register printout
	debugInstText *text.Text  // CPU instruction disassembly
	debugTipText  *text.Text  // Key bindings
}

const (
	debugResW float64 = 640
	debugResH float64 = 480

	screenPosX float64 = 600 // Where to render the display on the user's monitor.
	screenPosY float64 = 400
)

func NewDisplay() *Display {
	config := pixelgl.WindowConfig{
		Title:    "NES Emulator",
		Bounds:   pixel.R(0, 0, debugResW, debugResH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("Unable to create new PixelGl window...\n", err)
	}

	debugAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	debugRegText := text.New(pixel.V(8, debugResH-20), debugAtlas)
	debugInstText := text.New(pixel.V(8, debugResH-160), debugAtlas)
	debugTipText := text.New(pixel.V(8, 16), debugAtlas)

	debugTipText.WriteString("SPACE = step    R = reset    I = IRQ    N = NMI")

	return &Display{
		window:        window,
		debugAtlas:    debugAtlas,
		debugRegText:  debugRegText,
		debugInstText: debugInstText,
		debugTipText:  debugTipText,
	}
}

func (d *Display) Closed() bool {
	return d.window.Closed()
}

// Write a string of text to the CPU register section of the debug panel.
func (d *Display) WriteRegDebugString(t string) {
	d.debugRegText.Clear()
	d.debugRegText.WriteString(t)
}

// Write a string of text to the instruction disassembly section of the debug panel.
func (d *Display) WriteInstDebugString(t string) {
	d.debugInstText.Clear()
	d.debugInstText.WriteString(t)
}

// Update redraws the debug panel.
func (d *Display) Update() {
	d.window.Clear(colornames.Black)

	d.debugRegText.Draw(d.window, pixel.IM)
	d.debugInstText.Draw(d.window, pixel.IM)
	d.debugTipText.Draw(d.window, pixel.IM)

	d.window.Update()
}

// cpuDebugString renders the register section of the debug panel.
func (b *Bus) cpuDebugString() string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Flags: %08b\n", b.Cpu.Status))
	buf.WriteString(fmt.Sprintf("PC: $%04X\n", b.Cpu.Pc))
	buf.WriteString(fmt.Sprintf("A:  $%02X\n", b.Cpu.A))
	buf.WriteString(fmt.Sprintf("X:  $%02X\n", b.Cpu.X))
	buf.WriteString(fmt.Sprintf("Y:  $%02X\n", b.Cpu.Y))
	buf.WriteString(fmt.Sprintf("SP: $%02X\n", b.Cpu.Sp))
	buf.WriteString(fmt.Sprintf("Cycle Count: %d\n", b.Cpu.CycleCount))

	return buf.String()
}

// disassemblyLines returns up to n disassembled instructions starting at the
// current program counter. Not every address holds an instruction start, so
// scan forward to the next known line.
func (b *Bus) disassemblyLines(disassembly map[uint16]string, n int) string {
	var buf bytes.Buffer

	addr := b.Cpu.Pc
	for i := 0; i < n; i++ {
		line, ok := disassembly[addr]
		for !ok {
			if addr == 0xFFFF {
				return buf.String()
			}
			addr++
			line, ok = disassembly[addr]
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		addr++
	}

	return buf.String()
}
