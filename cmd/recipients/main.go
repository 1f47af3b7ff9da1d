// recipients lists the individual To/Cc entries of every message in an
// mbox file, one per line, using the same splitting the viewer's
// header pane uses.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/mail"
	"os"
	"strings"

	"github.com/emersion/go-mbox"

	"github.com/emurenMRz/mailpanel/internal/headerview"
)

func main() {
	var (
		inputPath = flag.String("path", "", "Input mbox file path (required)")
		fields    = flag.String("fields", "To,Cc", "Comma-separated header fields to list")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Error: -path is required")
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Failed to open mbox file: %v", err)
	}
	defer f.Close()

	var names []string
	for _, name := range strings.Split(*fields, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	reader := mbox.NewReader(f)
	for i := 0; ; i++ {
		mr, err := reader.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Error reading message %d: %v", i, err)
			continue
		}

		msg, err := mail.ReadMessage(mr)
		if err != nil {
			log.Printf("Failed to parse message %d: %v", i, err)
			continue
		}

		fmt.Printf("Message %d: %s\n", i, msg.Header.Get("Subject"))
		for _, name := range names {
			value := msg.Header.Get(name)
			if value == "" {
				continue
			}
			for _, entry := range headerview.Entries(name, value) {
				fmt.Printf("  %s: %s\n", name, entry)
			}
		}
	}
}
