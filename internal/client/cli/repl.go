package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// execIface is the command surface runREPL drives. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	help() string
	dispatch(ctx context.Context, cmd string, args []string) error
}

// runREPL reads one command per line and dispatches it until EOF, "exit" or
// "quit". Command errors are printed and never stop the loop.
//
// Commands prompt for their fields on the same reader, so the loop reads
// line by line instead of through a buffering Scanner.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("outreach %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(a.help())

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			err := a.dispatch(ctx, cmd, args)
			switch {
			case errors.Is(err, errUnknownCommand):
				printlnFn("Unknown command:", cmd)
			case err != nil:
				printlnFn("error:", err)
			}
		}
	}
}
