package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const appName = "dailypoll"

// Command is a devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Help sections, in display order
const (
	groupDatabase = "Database"
	groupData     = "Data"
	groupOps      = "Operations"
)

var groupOrder = []string{groupDatabase, groupData, groupOps}

// Registry resolves command names and aliases
type Registry struct {
	commands map[string]Command
	groups   map[string]string
	aliases  map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		groups:   make(map[string]string),
		aliases:  make(map[string]string),
	}
}

// Register adds cmd under the given help section
func (r *Registry) Register(group string, cmd Command) {
	r.commands[cmd.Name()] = cmd
	r.groups[cmd.Name()] = group
}

// Alias makes alias resolve to the registered command target
func (r *Registry) Alias(alias, target string) {
	r.aliases[alias] = target
}

func (r *Registry) Get(name string) (Command, bool) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns every command sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Suggest returns the command whose name shares the longest prefix with
// name, or "" when nothing shares at least two characters
func (r *Registry) Suggest(name string) string {
	best, bestLen := "", 1
	for _, cmd := range r.List() {
		n := commonPrefixLen(name, cmd.Name())
		if n > bestLen {
			best, bestLen = cmd.Name(), n
		}
	}
	return best
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func (r *Registry) aliasesOf(name string) []string {
	var out []string
	for alias, target := range r.aliases {
		if target == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// WriteHelp prints usage grouped by section
func (r *Registry) WriteHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s-devtool <command> [args...]\n", appName)

	width := 0
	for name := range r.commands {
		width = max(width, len(name))
	}

	for _, group := range groupOrder {
		var cmds []Command
		for _, cmd := range r.List() {
			if r.groups[cmd.Name()] == group {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", group)
		for _, cmd := range cmds {
			line := fmt.Sprintf("  %-*s  %s", width, cmd.Name(), cmd.Description())
			if aliases := r.aliasesOf(cmd.Name()); len(aliases) > 0 {
				line += " (alias: " + strings.Join(aliases, ", ") + ")"
			}
			fmt.Fprintln(w, line)
		}
	}
}
