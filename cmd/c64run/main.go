// Command c64run is the SDL2 front end: it owns the window, the pixel
// buffer and the event pump, none of which belong in the CORE. The CORE's
// system.C64 only exposes a FrameHook callback and register-file access;
// this command is what actually turns VIC-II state into pixels. Since the
// CORE's VIC does not generate a framebuffer (see spec Non-goals), this
// front end fills the whole frame with the current border color ($D020) on
// every FrameHook call — a placeholder for a real software renderer, which
// is out of CORE scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/trancee/c64core/c64/system"
	"github.com/trancee/c64core/logging"
)

const (
	screenWidth  = 320
	screenHeight = 200
)

var palette = [16]uint32{
	0x000000, 0xFFFFFF, 0x880000, 0xAAFFEE,
	0xCC44CC, 0x00CC55, 0x0000AA, 0xEEEE77,
	0xDD8855, 0x664400, 0xFF7777, 0x333333,
	0x777777, 0xAAFF66, 0x0088FF, 0xBBBBBB,
}

type frontend struct {
	machine  *system.C64
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
	running  bool
}

func newFrontend(machine *system.C64) (*frontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	window, err := sdl.CreateWindow("c64run",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenWidth*2, screenHeight*2, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, screenWidth, screenHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	f := &frontend{
		machine:  machine,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, screenWidth*screenHeight*4),
		running:  true,
	}
	machine.FrameHook = f.presentFrame
	return f, nil
}

func (f *frontend) presentFrame() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			f.running = false
		}
	}

	border := palette[f.machine.VIC.ReadRegister(0x20)&0x0F]
	for i := 0; i < screenWidth*screenHeight; i++ {
		off := i * 4
		f.pixels[off+0] = byte((border >> 16) & 0xFF)
		f.pixels[off+1] = byte((border >> 8) & 0xFF)
		f.pixels[off+2] = byte(border & 0xFF)
		f.pixels[off+3] = 0xFF
	}

	if err := f.texture.Update(nil, unsafe.Pointer(&f.pixels[0]), screenWidth*4); err != nil {
		fmt.Println(err)
		return
	}
	f.renderer.Clear()
	f.renderer.Copy(f.texture, nil, nil)
	f.renderer.Present()
}

func (f *frontend) Cleanup() {
	f.texture.Destroy()
	f.renderer.Destroy()
	f.window.Destroy()
	sdl.Quit()
}

func main() {
	basicROM := flag.String("basic", "basic-901226-01.bin", "BASIC ROM image")
	kernalROM := flag.String("kernal", "kernal-901227-03.bin", "KERNAL ROM image")
	charROM := flag.String("chargen", "chargen-901225-01.bin", "Character ROM image")
	ntsc := flag.Bool("ntsc", false, "Use NTSC timing instead of PAL")
	debug := flag.Bool("debug", false, "enable debug-level logging")
	flag.Parse()

	region := system.PAL
	if *ntsc {
		region = system.NTSC
	}
	log := logging.New(os.Stderr, *debug)
	machine := system.New(region, system.WithLogger(log))

	for _, rom := range []struct{ kind, path string }{
		{"basic", *basicROM}, {"kernal", *kernalROM}, {"char", *charROM},
	} {
		data, err := os.ReadFile(rom.path)
		if err != nil {
			fmt.Printf("reading %s ROM: %v\n", rom.kind, err)
			os.Exit(1)
		}
		if err := machine.Memory.LoadROM(data, rom.kind); err != nil {
			fmt.Printf("loading %s ROM: %v\n", rom.kind, err)
			os.Exit(1)
		}
	}

	machine.Reset()

	front, err := newFrontend(machine)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer front.Cleanup()

	for front.running {
		machine.Step()
	}
}
