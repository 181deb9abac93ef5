package terminal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/derekparker/trie"
	"github.com/go-delve/liner"
	"github.com/mattn/go-isatty"

	"github.com/godbg/godbg/config"
)

// Term drives the interactive REPL: it reads a line, splits it into a
// command name and argument string, and dispatches through Commands,
// the way delve's pkg/terminal.Term wraps liner.State around its own
// command table.
type Term struct {
	cmds    *Commands
	session *Session
	line    *liner.State
	cfg     *config.Config
	prompt  string
	stdout  io.Writer
}

// New builds a Term over an already-launched Session, wiring up a
// break-target completer from the debuggee's function table.
func New(s *Session, cfg *config.Config) *Term {
	dumb := !supportsEscapeCodes() || !isatty.IsTerminal(os.Stdout.Fd())
	var stdout io.Writer = os.Stdout
	prompt := "(godbg) "
	if !dumb {
		stdout = getColorableWriter()
		prompt = "\033[36m(godbg) \033[0m"
	}
	t := &Term{
		cmds:    DebugCommands(),
		session: s,
		line:    liner.NewLiner(),
		cfg:     cfg,
		prompt:  prompt,
		stdout:  stdout,
	}
	t.line.SetCompleter(t.complete)
	t.loadHistory()
	return t
}

func (t *Term) historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".godbg_history")
}

func (t *Term) loadHistory() {
	path := t.historyPath()
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	t.line.ReadHistory(f)
}

func (t *Term) saveHistory() {
	path := t.historyPath()
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	t.line.WriteHistory(f)
}

// complete offers break-target completions: every function name in the
// debuggee, matched by prefix through a trie (spec.md §6, "break-target
// completion"), the way the old goreadline-era command completer walked
// the symbol table, but backed by derekparker/trie instead of a linear
// scan.
func (t *Term) complete(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) == 1 {
		var out []string
		for _, c := range t.cmds.cmds {
			for _, a := range c.aliases {
				if strings.HasPrefix(a, fields[0]) {
					out = append(out, a)
				}
			}
		}
		return out
	}
	if fields[0] != "break" && fields[0] != "b" {
		return nil
	}
	names := t.funcNameTrie().PrefixSearch(fields[len(fields)-1])
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.Join(fields[:len(fields)-1], " ") + " " + n
	}
	return out
}

func (t *Term) funcNameTrie() *trie.Trie {
	tr := trie.New()
	for _, fn := range t.session.Info.Functions() {
		tr.Add(fn.Name, fn)
	}
	return tr
}

// applyAliases merges the config file's command aliases into the
// default table, the same device delve's Commands.Merge uses.
func (t *Term) applyAliases() {
	if t.cfg == nil {
		return
	}
	for cmd, aliases := range t.cfg.Aliases {
		for i := range t.cmds.cmds {
			if t.cmds.cmds[i].match(cmd) {
				t.cmds.cmds[i].aliases = append(t.cmds.cmds[i].aliases, aliases...)
			}
		}
	}
}

// Run drives the REPL until the debuggee exits or the user quits with
// "exit"/EOF, printing each command's error (if any) rather than
// aborting the loop on it (spec.md §7, REPL-level errors are
// non-fatal).
func (t *Term) Run() error {
	defer t.line.Close()
	defer t.saveHistory()
	t.applyAliases()

	for {
		line, err := t.line.Prompt(t.prompt)
		if err == io.EOF {
			fmt.Fprintln(t.stdout)
			return nil
		}
		if err != nil {
			return fmt.Errorf("terminal: reading input: %w", err)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		t.line.AppendHistory(line)
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}
		if err := t.cmds.Call(trimmed, t.session); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		if t.session.Proc.Exited() {
			fmt.Fprintln(t.stdout, "process has exited")
			return nil
		}
	}
}
