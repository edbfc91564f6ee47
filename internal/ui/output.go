package ui

import (
	"fmt"
	"strings"
)

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorGreen, SymbolCheck, ColorReset, msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorRed, SymbolCross, ColorReset, msg)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorBlue, SymbolInfo, ColorReset, msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorYellow, SymbolWarning, ColorReset, msg)
}

// PrintDownload prints a download progress message.
func PrintDownload(msg string) {
	fmt.Printf("%s%s%s %s\n", ColorCyan, SymbolDownload, ColorReset, msg)
}

// PrintDim prints de-emphasized text.
func PrintDim(msg string) {
	fmt.Printf("%s%s%s\n", ColorDim, msg, ColorReset)
}

// PrintHeader prints a section header inside a rule.
func PrintHeader(title string) {
	width := GetTermWidth()
	if width > 72 {
		width = 72
	}
	line := strings.Repeat(BoxHorizontal, width)
	fmt.Printf("%s%s%s\n", ColorPurple, line, ColorReset)
	fmt.Printf("%s%s %s%s\n", ColorBold, BulletArrow, title, ColorReset)
	fmt.Printf("%s%s%s\n", ColorPurple, line, ColorReset)
}

// PrintList prints items as a colored bullet list.
func PrintList(items []string, color string) {
	for _, item := range items {
		fmt.Printf("  %s%s%s %s\n", color, BulletArrow, ColorReset, item)
	}
}
