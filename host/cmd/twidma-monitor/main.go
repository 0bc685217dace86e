// twidma-monitor tails the firmware's diagnostic trace over a serial
// port. It reconnects automatically when the device disappears and
// offers a small interactive loop for annotating and saving the capture.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/shlex"
	"github.com/jpillora/backoff"

	"twidma/host/serial"
)

var (
	device     = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud       = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	timestamps = flag.Bool("timestamps", false, "Prefix trace lines with receive time")
)

// capture accumulates the trace seen so far, for save/clear.
type capture struct {
	mu    sync.Mutex
	lines []string
}

func (c *capture) add(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()
}

func (c *capture) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func (c *capture) clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

func main() {
	flag.Parse()

	fmt.Printf("twidma-monitor: tracing %s\n", *device)

	capt := &capture{}
	go readLoop(capt)

	fmt.Println("Commands: mark <note>, save <path>, clear, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args, err := shlex.Split(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
			continue
		}

		switch args[0] {
		case "quit", "exit", "q":
			return

		case "mark":
			note := strings.Join(args[1:], " ")
			marker := "--- mark: " + note + " ---"
			capt.add(marker)
			fmt.Println(marker)

		case "save":
			if len(args) != 2 {
				fmt.Println("usage: save <path>")
				continue
			}
			if err := save(args[1], capt.snapshot()); err != nil {
				fmt.Fprintf(os.Stderr, "save: %v\n", err)
				continue
			}
			fmt.Printf("saved %s\n", args[1])

		case "clear":
			capt.clear()

		default:
			fmt.Printf("unknown command: %s\n", args[0])
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}
}

// readLoop streams trace lines from the device, reopening the port with
// exponential backoff when it goes away (unplug, firmware reflash).
func readLoop(capt *capture) {
	retry := &backoff.Backoff{
		Min:    250 * time.Millisecond,
		Max:    10 * time.Second,
		Jitter: true,
	}

	for {
		port, err := serial.Open(&serial.Config{Device: *device, Baud: *baud})
		if err != nil {
			time.Sleep(retry.Duration())
			continue
		}
		retry.Reset()

		r := bufio.NewScanner(port)
		for r.Scan() {
			line := r.Text()
			if *timestamps {
				line = time.Now().Format("15:04:05.000 ") + line
			}
			capt.add(line)
			fmt.Println(line)
		}
		port.Close()
		// Fall through to reconnect.
	}
}

func save(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}
