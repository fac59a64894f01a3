package utils

import (
	"fmt"
)

const (
	ColorCyan   = "\033[36m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
)

// PrintTagged prints a colored [tag] prefix followed by the message.
func PrintTagged(tag string, color string, a ...any) {
	fmt.Print(color, "[", tag, "]\033[0m ")
	fmt.Print(a...)
	fmt.Print("\n")
}
