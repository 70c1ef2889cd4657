package port

import (
	"context"
)

type Command interface {
	// Run executes the command with its remaining command line arguments.
	Run(ctx context.Context, args []string) error
	// GetCommand retrieves the name the command handler is registered under.
	GetCommand() string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
}
