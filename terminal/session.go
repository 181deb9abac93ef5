// Package terminal implements the interactive REPL: command dispatch,
// tab completion and line editing on top of a single debuggee session
// (spec.md §6 "EXTERNAL INTERFACES"). It is grounded on delve's
// pkg/terminal/command.go, trimmed to the commands this debugger
// exposes and stripped of the client/server split that package's RPC
// architecture requires.
package terminal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cosiner/argv"

	"github.com/godbg/godbg/dbginfo"
	"github.com/godbg/godbg/proc"
	"github.com/godbg/godbg/stepengine"
)

// Session owns everything one REPL interacts with: the traced process,
// its debug info, and the stepping engine built on top of both.
type Session struct {
	Proc   *proc.Process
	Info   *dbginfo.DebugInfo
	Engine *stepengine.Engine
}

// NewSession launches cmd and returns a ready-to-use Session.
func NewSession(binaryPath string, cmd []string, dir string) (*Session, error) {
	info, err := dbginfo.New(binaryPath)
	if err != nil {
		return nil, err
	}
	dbp, err := proc.Launch(cmd, dir)
	if err != nil {
		return nil, err
	}
	return &Session{Proc: dbp, Info: info, Engine: stepengine.New(dbp, info)}, nil
}

type cmdfunc func(s *Session, args string) error

type command struct {
	aliases []string
	cmdFn   cmdfunc
	helpMsg string
}

func (c command) match(name string) bool {
	for _, a := range c.aliases {
		if a == name {
			return true
		}
	}
	return false
}

// Commands is the REPL's dispatch table. Short forms like "b" for
// "break" are registered as explicit aliases, the same approach
// delve's command table uses; anything else typed is resolved against
// the alias table by longest unambiguous prefix, so "bre" also reaches
// cmdBreak as long as no other alias shares that prefix.
type Commands struct {
	cmds []command
}

// DebugCommands returns the REPL's full command table.
func DebugCommands() *Commands {
	c := &Commands{}
	c.cmds = []command{
		{aliases: []string{"help", "h"}, cmdFn: cmdHelp(c), helpMsg: "Prints the help message."},
		{aliases: []string{"continue", "c"}, cmdFn: cmdContinue, helpMsg: "Resume until the next breakpoint or exit."},
		{aliases: []string{"break", "b"}, cmdFn: cmdBreak, helpMsg: "break <file:line>|<function>: set a breakpoint."},
		{aliases: []string{"step", "s"}, cmdFn: cmdStep, helpMsg: "Single-step one source line, stepping into calls."},
		{aliases: []string{"next", "n"}, cmdFn: cmdNext, helpMsg: "Single-step one source line, stepping over calls."},
		{aliases: []string{"finish"}, cmdFn: cmdFinish, helpMsg: "Run until the current function returns."},
		{aliases: []string{"stepi"}, cmdFn: cmdStepInstruction, helpMsg: "Execute exactly one machine instruction."},
		{aliases: []string{"status"}, cmdFn: cmdStatus, helpMsg: "Print the current pc, function and file:line."},
		{aliases: []string{"register"}, cmdFn: cmdRegister, helpMsg: "register dump|read <name>|write <name> <hex>"},
		{aliases: []string{"memory"}, cmdFn: cmdMemory, helpMsg: "memory read <addr>|write <addr> <hex>"},
		{aliases: []string{"variables", "vars"}, cmdFn: cmdVariables, helpMsg: "List variables in the current function."},
		{aliases: []string{"backtrace", "bt"}, cmdFn: cmdBacktrace, helpMsg: "Print the current call stack."},
		{aliases: []string{"symbol"}, cmdFn: cmdSymbol, helpMsg: "symbol <name>: list symbols with exactly this name."},
	}
	return c
}

// Find resolves name to a command function: an exact alias match wins
// outright, otherwise name must be a prefix of exactly one alias across
// the whole table (spec.md §6, "resolved by longest-prefix match on the
// verb": the typed verb is matched as far as it unambiguously reaches
// into the alias table). An unmatched or ambiguous name returns nil.
func (c *Commands) Find(name string) cmdfunc {
	for _, v := range c.cmds {
		if v.match(name) {
			return v.cmdFn
		}
	}
	var found cmdfunc
	matches := 0
	for _, v := range c.cmds {
		for _, a := range v.aliases {
			if strings.HasPrefix(a, name) {
				found = v.cmdFn
				matches++
				break
			}
		}
	}
	if matches != 1 {
		return nil
	}
	return found
}

// Call splits line into a command name and argument string and
// dispatches it.
func (c *Commands) Call(line string, s *Session) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	fields := strings.SplitN(line, " ", 2)
	name := fields[0]
	var args string
	if len(fields) > 1 {
		args = strings.TrimSpace(fields[1])
	}
	fn := c.Find(name)
	if fn == nil {
		return errors.New("Unknown command")
	}
	return fn(s, args)
}

// splitArgs tokenizes a command's argument string with bash-style
// quoting, the same device delve's own command parser uses for
// multi-word arguments like `memory write`.
func splitArgs(args string) ([]string, error) {
	fields, err := argv.Argv(args, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields[0], nil
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, 64)
}
