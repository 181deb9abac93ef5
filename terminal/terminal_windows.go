package terminal

import (
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-colorable"
)

const enableVirtualTerminalProcessing = 0x0004

// supportsEscapeCodes reports whether stdout's console mode already has
// virtual terminal processing on, or ConEmu is fronting the console; either
// way raw ANSI sequences reach the screen without getColorableWriter's
// translation layer.
func supportsEscapeCodes() bool {
	if strings.ToLower(os.Getenv("ConEmuANSI")) == "on" {
		return true
	}
	h, err := syscall.GetStdHandle(syscall.STD_OUTPUT_HANDLE)
	if err != nil {
		return false
	}
	var m uint32
	if err := syscall.GetConsoleMode(h, &m); err != nil {
		return false
	}
	return m&enableVirtualTerminalProcessing != 0
}

// getColorableWriter will return a writer that is capable
// of interpreting ANSI escape codes for terminal colors.
func getColorableWriter() io.Writer {
	if strings.ToLower(os.Getenv("ConEmuANSI")) == "on" {
		// The ConEmu terminal is installed. Use it.
		return os.Stdout
	}

	h, err := syscall.GetStdHandle(syscall.STD_OUTPUT_HANDLE)
	if err != nil {
		return os.Stdout
	}
	var m uint32
	err = syscall.GetConsoleMode(h, &m)
	if err != nil {
		return os.Stdout
	}
	if m&enableVirtualTerminalProcessing != 0 {
		return os.Stdout
	}
	return colorable.NewColorableStdout()
}
