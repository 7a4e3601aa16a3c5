package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/theinternetftw/dotgo"
	"github.com/theinternetftw/dotgo/profiling"
	"github.com/theinternetftw/dotgo/romloader"
	"github.com/theinternetftw/dotgo/windowing"
)

func init() {
	// SDL event handling must run on the main OS thread
	runtime.LockOSThread()
}

const windowScale = 4

var imageExtensions = []string{".gb", ".gbc", ".dmg", ".bin"}

func main() {

	defer profiling.Start().Stop()

	assert(len(os.Args) == 2, "usage: ./dotgo ROM_FILENAME")

	rom, name, err := romloader.Load(os.Args[1], imageExtensions)
	dieIf(err)
	assert(len(rom) >= dotgo.HeaderSize, "cannot parse, file is too small")

	// TODO: config file instead
	devMode := fileExists("devmode")
	if devMode {
		if info, err := dotgo.ParseCartInfo(rom); err == nil {
			fmt.Printf("Game title: %q\n", info.Title)
			fmt.Printf("Cart type: %d\n", info.CartridgeType)
			if size, err := info.RAMSize(); err == nil {
				fmt.Printf("Cart RAM size: %d\n", size)
			}
			if size, err := info.ROMSize(); err == nil {
				fmt.Printf("Cart ROM size: %d\n", size)
			}
		}
	}

	window, err := windowing.New(windowing.Options{
		Title: fmt.Sprintf("dotgo - %q", name),
		Width: dotgo.LCDWidth, Height: dotgo.LCDHeight,
		Scale: windowScale,
	})
	dieIf(err)

	core := dotgo.NewPatternCore()
	dev := dotgo.NewDeviceContext(rom, window)

	loop, err := dotgo.NewLoop(core, dev, dotgo.DefaultKeymap())
	if err != nil {
		window.Close()
		dieIf(err)
	}

	// a nil error here means the window was closed; anything else is a
	// core fault or a presentation failure, both terminal
	if err := loop.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err, "Exiting.")
		os.Exit(1)
	}
}

func assert(test bool, msg string) {
	if !test {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

func dieIf(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
