package codegen

import (
	_ "embed"
	"io"
	"strings"
)

// bootloaderSource defines the C main that hands control to invoke_main.
//
//go:embed bootloader.cf
var bootloaderSource string

// Bootloader returns the default bootloader for FixMain.
func Bootloader() io.Reader {
	return strings.NewReader(bootloaderSource)
}
