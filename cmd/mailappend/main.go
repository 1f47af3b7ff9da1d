// mailappend delivers one message from stdin to the end of an mbox
// file, escaping "From " lines in the body. Exit codes follow
// sysexits so it can sit behind an MDA.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	exitOK       = 0
	exitTempFail = 75 // EX_TEMPFAIL
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <mbox-file>\n", os.Args[0])
		os.Exit(exitTempFail)
	}

	f, err := os.OpenFile(os.Args[1], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open mbox: %v\n", err)
		os.Exit(exitTempFail)
	}

	if err := appendMessage(f, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		f.Close()
		os.Exit(exitTempFail)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close error: %v\n", err)
		os.Exit(exitTempFail)
	}
	os.Exit(exitOK)
}

func appendMessage(w *os.File, r *os.File) error {
	scanner := bufio.NewScanner(r)
	inHeader := true
	for scanner.Scan() {
		line := scanner.Text()

		if inHeader {
			// Header lines pass through untouched until the blank
			// separator line.
			if line == "" {
				inHeader = false
			}
		} else if strings.HasPrefix(line, "From ") {
			// Body lines that would start a new mbox message get
			// escaped.
			line = ">" + line
		}

		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	// Blank line terminates the appended message.
	if _, err := w.WriteString("\n"); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
