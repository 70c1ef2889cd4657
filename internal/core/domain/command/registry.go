package command

import (
	"errors"
	"strings"

	"github.com/jackramireznewacc/webp-converter/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Debug().Str("handler", handler.GetCommand()).Msg("adding command handler to registry")
	r.commands[handler.GetCommand()] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

func (r *Registry) ListCommands() []string {
	keys := make([]string, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}

// ParseCommand returns the command name from an argument list.
func ParseCommand(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return strings.ToLower(args[0])
}

// ParseCommandArgs returns everything after the command name.
func ParseCommandArgs(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	return args[1:]
}
