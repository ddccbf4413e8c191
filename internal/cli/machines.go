// Package cli implements the automata commands. The cobra wiring lives in
// cmd/automata; everything here writes to the io.Writer it is given.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/tcp"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/aretw0/automata/pkg/schema"
)

// TCPName is the registry name of the built-in TCP connection machine. It is
// also accepted in place of a definition path.
const TCPName = "tcp"

// ErrNoDefinition is returned when a command needs a definition file.
var ErrNoDefinition = errors.New("no definition given")

// machineOptions returns the machine options for the CLI conventions: the
// logger is always attached and debug mode adds transition logging.
func machineOptions(logger *slog.Logger, debug bool) []automata.Option {
	opts := []automata.Option{automata.WithLogger(logger)}
	if debug {
		opts = append(opts, automata.WithLifecycleHooks(observability.LoggingHooks(logger)))
	}
	return opts
}

// loadFactory resolves a definition path, or the built-in TCP machine when
// path is empty or "tcp".
func loadFactory(path string) (string, automata.Factory, error) {
	if path == "" || path == TCPName {
		return TCPName, tcp.Factory, nil
	}

	def, err := schema.Load(path)
	if err != nil {
		return "", nil, err
	}
	factory, err := schema.Factory(def)
	if err != nil {
		return "", nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return def.Name, factory, nil
}

// loadMachine builds a fresh machine from a definition path.
func loadMachine(path string, logger *slog.Logger, debug bool) (*automata.Machine, error) {
	_, factory, err := loadFactory(path)
	if err != nil {
		return nil, err
	}
	m, err := factory(machineOptions(logger, debug)...)
	if err != nil {
		return nil, fmt.Errorf("error initializing machine: %w", err)
	}
	return m, nil
}

// BuildRegistry registers the TCP machine as the default followed by every
// definition in paths under its own name. A "tcp" path refers to the built-in
// machine; a definition that claims the name is a duplicate.
func BuildRegistry(paths ...string) (*registry.Registry[automata.Factory], error) {
	reg := registry.New[automata.Factory]()
	if err := reg.Register(TCPName, tcp.Factory, true); err != nil {
		return nil, err
	}
	for _, p := range paths {
		if p == "" || p == TCPName {
			continue
		}
		name, factory, err := loadFactory(p)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(name, factory, false); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", p, err)
		}
	}
	return reg, nil
}
