package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emurenMRz/mailpanel/internal/mailheader"
	"github.com/emurenMRz/mailpanel/internal/mboxfile"
)

func main() {
	var (
		mode          = flag.String("mode", "validate", "Operation mode: validate, fix, show")
		inplace       = flag.Bool("inplace", false, "Modify input file in-place (for fix mode)")
		outPath       = flag.String("out", "", "Output file path (for fix mode)")
		dryRun        = flag.Bool("dry-run", false, "Simulate fix operation without writing (for fix mode)")
		removeDeleted = flag.Bool("remove-deleted", false, "Remove messages with Status: D (for fix mode)")
		quiet         = flag.Bool("quiet", false, "Suppress non-error output (for fix mode)")
		msgIndex      = flag.Int("msg", -1, "Message index (for show mode)")
		inputPath     = flag.String("path", "", "Input mbox file path (required)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Error: -path is required")
	}

	messages, err := mboxfile.ReadMessages(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read mbox file: %v", err)
	}

	switch *mode {
	case "validate":
		validateMessages(messages)
	case "fix":
		fixMessages(messages, *inputPath, *inplace, *outPath, *dryRun, *removeDeleted, *quiet)
	case "show":
		showMessage(messages, *msgIndex)
	default:
		log.Fatal("Error: Unknown mode. Use validate, fix, or show")
	}
}

func headersOf(message string) string {
	_, rest := mboxfile.SplitEnvelope(message)
	headers, _ := mboxfile.SplitBody(rest)
	return headers
}

func validateMessages(messages []string) {
	var allResults []mailheader.ValidationResult
	for i, message := range messages {
		allResults = append(allResults, mailheader.Validate(headersOf(message), i)...)
	}
	printResults(allResults)
}

func fixMessages(messages []string, inputPath string, inplace bool, outPath string, dryRun, removeDeleted, quiet bool) {
	if removeDeleted {
		var kept []string
		for _, message := range messages {
			h := mailheader.Parse(headersOf(message))
			if status, ok := h.Get("Status"); ok && status == "D" {
				continue
			}
			kept = append(kept, message)
		}
		messages = kept
	}

	var fixed []string
	var allResults []mailheader.ValidationResult
	for i, message := range messages {
		envelope, rest := mboxfile.SplitEnvelope(message)
		headers, body := mboxfile.SplitBody(rest)
		repaired, results := mailheader.Normalize(headers, i)
		fixed = append(fixed, envelope+"\n"+repaired+"\n"+body)
		allResults = append(allResults, results...)
	}

	if !quiet {
		printResults(allResults)
	}
	if dryRun {
		return
	}

	switch {
	case inplace:
		writeOrDie(fixed, inputPath)
	case outPath != "":
		writeOrDie(fixed, outPath)
	default:
		for _, msg := range fixed {
			fmt.Println(msg)
		}
	}
}

func showMessage(messages []string, msgIndex int) {
	if msgIndex < 0 || msgIndex >= len(messages) {
		log.Fatal("Error: Invalid message index")
	}

	fmt.Printf("Message %d:\n", msgIndex)
	for _, f := range mailheader.Parse(headersOf(messages[msgIndex])).Fields() {
		fmt.Printf("%s: %s\n", f.Name, f.Value())
	}
}

func writeOrDie(messages []string, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal("Error creating output file:", err)
	}
	defer file.Close()

	for _, msg := range messages {
		if _, err := file.WriteString(msg); err != nil {
			log.Fatal("Error writing to output file:", err)
		}
	}
}

func printResults(results []mailheader.ValidationResult) {
	if len(results) == 0 {
		fmt.Println("No validation errors found.")
		return
	}

	for _, result := range results {
		switch result.Status {
		case mailheader.StatusMissing:
			fmt.Printf("Message %d: %s header is missing\n", result.MsgIndex, result.Field)
		case mailheader.StatusInvalid:
			fmt.Printf("Message %d: %s header is invalid (%s)\n", result.MsgIndex, result.Field, result.Detail)
		case mailheader.StatusDeleted:
			fmt.Printf("Message %d: Status = D (will be removed)\n", result.MsgIndex)
		}
	}
}
