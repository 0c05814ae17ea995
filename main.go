package main

import (
	"fmt"
	"log"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"gopkg.in/urfave/cli.v2"

	"github.com/gones-emu/gones/nes"
)

func main() {
	app := &cli.App{
		Name:  "gones",
		Usage: "NES 6502 emulator core with a step debugger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to an iNES image",
				Value:   "./roms/nestest.nes",
			},
			&cli.BoolFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "write a per-instruction CPU trace to ./logs",
			},
			&cli.IntFlag{
				Name:    "steps",
				Aliases: []string{"n"},
				Usage:   "run N instructions headless and exit",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	fmt.Println("Starting NES...")
	bus := nes.NewBus()

	cart, err := nes.NewCartridge(c.String("rom"))
	if err != nil {
		return err
	}
	bus.InsertCartridge(cart)

	if c.Bool("log") {
		logger, err := nes.NewFileLogger()
		if err != nil {
			return err
		}
		bus.Cpu.SetLogger(logger)
	}

	fmt.Println("Resetting NES...")
	bus.Reset()

	if n := c.Int("steps"); n > 0 {
		for i := 0; i < n; i++ {
			bus.Cpu.StepInstruction()
		}
		fmt.Println(bus.Cpu.Trace())
		bus.CheckForNestestErrors()
		return nil
	}

	pixelgl.Run(bus.Run)

	return nil
}
