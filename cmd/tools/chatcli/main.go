// chatcli is a terminal stand-in for the browser widget: it holds one
// session for its lifetime and replays the transcript as history on every
// turn, exactly like the embedded shell does.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"supportbot/pkg/widget"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	url := flag.String("url", "http://localhost:8080", "backend base URL")
	timeout := flag.Duration("timeout", 45*time.Second, "per-request timeout")
	flag.Parse()

	client := widget.New(*url, &http.Client{Timeout: *timeout})

	ctx := context.Background()
	cfg, err := client.Settings(ctx)
	if err != nil {
		log.Fatalf("failed to fetch bot settings from %s: %v", *url, err)
	}

	fmt.Printf("%s — session %s\n", cfg.BotName, client.SessionID())
	fmt.Println(cfg.WelcomeMessage)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		reply, err := client.Send(ctx, scanner.Text())
		if err != nil {
			if errors.Is(err, widget.ErrEmptyMessage) {
				continue
			}
			log.Fatalf("send failed: %v", err)
		}
		if reply == "" {
			fmt.Println("(no reply)")
			continue
		}
		fmt.Println(strings.TrimSpace(reply))
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin error: %v", err)
	}
}
