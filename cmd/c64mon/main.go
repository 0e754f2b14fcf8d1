// Command c64mon is a read-only terminal monitor over a running C64: CPU
// registers, disassembly around PC, the stack, and a scrollable memory dump.
// Apart from the optional -prg load at startup, it never writes to the
// machine beyond stepping it, and carries no
// save-state or debugger-script format (see spec Non-goals).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trancee/c64core/c64/system"
	"github.com/trancee/c64core/cpu"
	"github.com/trancee/c64core/dis/disassembler"
)

// CPUState holds a snapshot of CPU state for change-highlighting.
type CPUState struct {
	A  uint8
	X  uint8
	Y  uint8
	PC uint16
	SP uint8
	P  uint8
}

type stepTick struct{}

func doStep() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return stepTick{}
	})
}

// Monitor is the bubbletea model.
type Monitor struct {
	machine *system.C64

	paused           bool
	width            int
	height           int
	locations        []disassembler.Location
	locationIndex    int
	selectedLocation int

	lastState  CPUState
	lastMemory [64]uint8

	memoryAddress uint16
	activePane    string
	gotoInput     textinput.Model
	showingGoto   bool

	breakpoints map[uint16]bool
}

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).Width(30)

	changedStyle = lipgloss.NewStyle().Foreground(changed).Bold(true)

	stackStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).Width(30)

	disasmStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1)

	currentLineStyle  = lipgloss.NewStyle().Background(highlight).Foreground(lipgloss.Color("#ffffff"))
	selectedLineStyle = lipgloss.NewStyle().Foreground(highlight)

	memoryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).Width(50)

	breakpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

// memBus adapts Manager.RawRead/RawWrite to disassembler.DisassembleInstructions,
// which expects a cpu.MemoryBus but must never tick the clock.
type memBus struct{ m *system.C64 }

func (b memBus) Read(addr uint16) uint8         { return b.m.Memory.RawRead(addr) }
func (b memBus) Write(addr uint16, value uint8) { b.m.Memory.RawWrite(addr, value) }

func NewMonitor(machine *system.C64) *Monitor {
	ti := textinput.New()
	ti.Placeholder = "Enter hex address (e.g. FF00)"
	ti.CharLimit = 4
	ti.Width = 6

	m := &Monitor{
		machine:       machine,
		paused:        true,
		locations:     disassembler.DisassembleInstructions(memBus{machine}),
		memoryAddress: 0,
		activePane:    "disasm",
		gotoInput:     ti,
		breakpoints:   make(map[uint16]bool),
	}
	m.relocate()
	return m
}

func (m *Monitor) captureMemoryState() {
	addr := m.memoryAddress
	for i := 0; i < 64; i++ {
		m.lastMemory[i] = m.machine.Memory.RawRead(addr + uint16(i))
	}
}

func (m Monitor) formatMemory() string {
	var result strings.Builder
	addr := m.memoryAddress

	for row := 0; row < 8; row++ {
		result.WriteString(fmt.Sprintf("$%04X: ", addr))
		for col := 0; col < 8; col++ {
			offset := row*8 + col
			value := m.machine.Memory.RawRead(addr + uint16(col))
			last := m.lastMemory[offset]
			if value != last {
				result.WriteString(changedStyle.Render(fmt.Sprintf("%02X ", value)))
			} else {
				result.WriteString(fmt.Sprintf("%02X ", value))
			}
		}
		result.WriteString(" | ")
		for col := 0; col < 8; col++ {
			offset := row*8 + col
			value := m.machine.Memory.RawRead(addr + uint16(col))
			last := m.lastMemory[offset]
			ch := "."
			if value >= 32 && value <= 126 {
				ch = string(value)
			}
			if value != last {
				result.WriteString(changedStyle.Render(ch))
			} else {
				result.WriteString(ch)
			}
		}
		result.WriteString("\n")
		addr += 8
	}
	return result.String()
}

func (m Monitor) Init() tea.Cmd { return nil }

func (m *Monitor) relocate() {
	index := 0
	for i, l := range m.locations {
		if l.PC == m.machine.CPU.PC {
			index = i
		}
	}
	m.locationIndex = index
	m.selectedLocation = index
}

func (m Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	c := m.machine.CPU
	switch msg := msg.(type) {
	case stepTick:
		if m.paused || m.breakpoints[c.PC] {
			m.paused = true
			return m, nil
		}
		m.snapshot()
		m.machine.Step()
		m.relocate()
		return m, doStep()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.memoryAddress = uint16(addr)
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.paused {
				m.snapshot()
				m.machine.Step()
				m.relocate()
			}
		case "b":
			addr := m.locations[m.selectedLocation].PC
			if m.breakpoints[addr] {
				delete(m.breakpoints, addr)
			} else {
				m.breakpoints[addr] = true
			}
		case "n":
			if m.paused && len(m.breakpoints) > 0 {
				m.paused = false
				return m, doStep()
			}
		case "p":
			m.paused = !m.paused
		case "tab":
			if m.activePane == "disasm" {
				m.activePane = "memory"
			} else {
				m.activePane = "disasm"
			}
		case "up":
			if m.activePane == "disasm" {
				if m.selectedLocation > 0 {
					m.selectedLocation--
				}
			} else if m.memoryAddress >= 8 {
				m.memoryAddress -= 8
				m.captureMemoryState()
			}
		case "down":
			if m.activePane == "disasm" {
				if m.selectedLocation < len(m.locations)-20 {
					m.selectedLocation++
				}
			} else if m.memoryAddress <= 0xFFF8 {
				m.memoryAddress += 8
				m.captureMemoryState()
			}
		case "pgup":
			if m.activePane == "disasm" {
				m.selectedLocation -= 20
				if m.selectedLocation < 0 {
					m.selectedLocation = 0
				}
			} else {
				if m.memoryAddress >= 64 {
					m.memoryAddress -= 64
				} else {
					m.memoryAddress = 0
				}
				m.captureMemoryState()
			}
		case "pgdown":
			if m.activePane == "disasm" {
				m.selectedLocation += 20
				if m.selectedLocation > len(m.locations)-20 {
					m.selectedLocation = len(m.locations) - 20
				}
			} else {
				if m.memoryAddress <= 0xFFC0 {
					m.memoryAddress += 64
				} else {
					m.memoryAddress = 0xFFC0
				}
				m.captureMemoryState()
			}
		}
	}
	return m, nil
}

func (m *Monitor) snapshot() {
	c := m.machine.CPU
	m.lastState = CPUState{A: c.A, X: c.X, Y: c.Y, PC: c.PC, SP: c.SP, P: c.P}
	m.captureMemoryState()
}

func (m Monitor) formatReg8(name string, current, last uint8) string {
	value := fmt.Sprintf("%s: $%02X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m Monitor) formatReg16(name string, current, last uint16) string {
	value := fmt.Sprintf("%s: $%04X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m Monitor) formatFlags() string {
	flags := []struct {
		name string
		flag uint8
	}{
		{"N", cpu.FlagN}, {"V", cpu.FlagV}, {"B", cpu.FlagB}, {"D", cpu.FlagD},
		{"I", cpu.FlagI}, {"Z", cpu.FlagZ}, {"C", cpu.FlagC},
	}
	var result strings.Builder
	c := m.machine.CPU
	for _, f := range flags {
		current := c.P&f.flag != 0
		last := m.lastState.P&f.flag != 0
		if current {
			if current != last {
				result.WriteString(changedStyle.Render(f.name + " "))
			} else {
				result.WriteString(f.name + " ")
			}
		} else {
			result.WriteString("- ")
		}
	}
	return result.String()
}

func (m Monitor) disassemble() string {
	var result strings.Builder
	c := m.machine.CPU
	for i := 0; i < 20 && m.selectedLocation+i < len(m.locations); i++ {
		offset := m.selectedLocation + i
		l := m.locations[offset]
		line := l.String()
		switch {
		case m.breakpoints[l.PC] && l.PC == c.PC:
			line = currentLineStyle.Render("● " + line)
		case m.breakpoints[l.PC]:
			line = breakpointStyle.Render("● " + line)
		case l.PC == c.PC:
			line = currentLineStyle.Render(line)
		case offset == m.selectedLocation:
			line = selectedLineStyle.Render(line)
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

func (m Monitor) formatStack() string {
	var result strings.Builder
	c := m.machine.CPU
	for i := uint16(0xFF); i >= uint16(c.SP); i-- {
		result.WriteString(fmt.Sprintf("$%02X: %02X\n", i, m.machine.Memory.RawRead(0x100+i)))
		if i == 0 {
			break
		}
	}
	return result.String()
}

func (m Monitor) View() string {
	rightColumnWidth := 32
	leftColumnWidth := 40

	info := infoStyle.Width(rightColumnWidth)
	stack := stackStyle.Width(rightColumnWidth)
	disasm := disasmStyle.Width(leftColumnWidth)
	c := m.machine.CPU

	disasmPane := disasm.Render(fmt.Sprintf("Disassembly\n\n%s", m.disassemble()))

	cpuState := info.Render(fmt.Sprintf(
		"CPU State\n\n%s    %s    %s\n%s  %s\n\nFlags: %s\n",
		m.formatReg8("A", c.A, m.lastState.A),
		m.formatReg8("X", c.X, m.lastState.X),
		m.formatReg8("Y", c.Y, m.lastState.Y),
		m.formatReg16("PC", c.PC, m.lastState.PC),
		m.formatReg8("SP", c.SP, m.lastState.SP),
		m.formatFlags(),
	))

	stackPane := stack.Render(fmt.Sprintf("Stack\n\n%s", m.formatStack()))
	memoryPane := memoryStyle.Render(fmt.Sprintf("Memory (↑↓ to scroll)\n\n%s", m.formatMemory()))

	right := lipgloss.JoinVertical(lipgloss.Left, cpuState, stackPane, memoryPane)

	var help string
	if !m.paused {
		help = titleStyle.Render("p: pause • q: quit")
	} else {
		help = titleStyle.Render(
			"s: step • n: run to break • p: pause/resume • b: toggle break • " +
				"↑↓: scroll • pgup/pgdn: page • tab: switch pane • g: goto • q: quit",
		)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, disasmPane, lipgloss.PlaceHorizontal(3, lipgloss.Left, right))

	if m.showingGoto {
		dialog := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).Width(30).
			Render("Go to address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Center, content, help, dialog)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

func main() {
	basicROM := flag.String("basic", "basic-901226-01.bin", "BASIC ROM image")
	kernalROM := flag.String("kernal", "kernal-901227-03.bin", "KERNAL ROM image")
	charROM := flag.String("chargen", "chargen-901225-01.bin", "Character ROM image")
	prg := flag.String("prg", "", "Optional raw binary to DMA into RAM after reset; PC is set to its load address")
	prgAddr := flag.String("addr", "$0801", "Load address for -prg")
	flag.Parse()

	machine := system.New(system.PAL)

	if err := loadROM(machine, "basic", *basicROM); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := loadROM(machine, "kernal", *kernalROM); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := loadROM(machine, "char", *charROM); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	machine.Reset()

	if *prg != "" {
		data, err := os.ReadFile(*prg)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		addrStr := strings.TrimPrefix(*prgAddr, "$")
		addr, err := strconv.ParseUint(addrStr, 16, 16)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		machine.Memory.DMA(uint16(addr), data)
		machine.CPU.PC = uint16(addr)
	}

	p := tea.NewProgram(NewMonitor(machine))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadROM(machine *system.C64, kind, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s ROM: %w", kind, err)
	}
	return machine.Memory.LoadROM(data, kind)
}
