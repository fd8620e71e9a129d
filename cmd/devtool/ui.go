package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// out receives all user-facing output; tests swap it
var out io.Writer = os.Stdout

// useColor follows the NO_COLOR convention
func useColor() bool {
	_, disabled := os.LookupEnv("NO_COLOR")
	return !disabled
}

func printStatus(color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if !useColor() {
		fmt.Fprintf(out, "%s %s\n", symbol, msg)
		return
	}
	fmt.Fprintf(out, "%s%s %s%s\n", color, symbol, msg, colorReset)
}

func PrintInfo(format string, a ...interface{}) {
	printStatus(colorBlue, "ℹ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printStatus(colorGreen, "✓", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printStatus(colorYellow, "⚠", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printStatus(colorRed, "✗", format, a...)
}

func PrintHeader(title string) {
	if !useColor() {
		fmt.Fprintf(out, "\n=== %s ===\n", title)
		return
	}
	fmt.Fprintf(out, "\n%s=== %s ===%s\n", colorYellow, title, colorReset)
}

// redactPassword masks the password of a postgres:// connection string for display
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}
