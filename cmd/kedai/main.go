package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login/logout: Manage the stored session
// - list/get:     Show addresses
// - add/edit:     Fill in and submit the address form
// - delete:       Delete an address after confirmation
// - select:       Choose the delivery address of the next order
// - selected:     Show the chosen delivery address
// - pick/search:  Resolve a map position or a place search
// - qr:           Write the delivery location as a QR code

type command struct {
	flags *flag.FlagSet
	usage string
	run   func(ctx context.Context, d *deps) error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	commands := newCommands()

	cmd, ok := commands[name]
	if !ok {
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}

	if err := cmd.flags.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", name)
	}

	return withApp(ctx, cmd.run)
}

func printUsage() {
	fmt.Println("Usage: kedai <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, name := range commandOrder {
		fmt.Printf("  %-9s %s\n", name, newCommands()[name].usage)
	}
	fmt.Println()
	fmt.Println("Run 'kedai <command> -h' for the flags of a command.")
}
