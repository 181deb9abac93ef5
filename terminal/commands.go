package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

func cmdHelp(c *Commands) cmdfunc {
	return func(s *Session, args string) error {
		if args == "" {
			fmt.Println("The following commands are available:")
			for _, v := range c.cmds {
				fmt.Printf("    %-12s %s\n", v.aliases[0], v.helpMsg)
			}
			return nil
		}
		for _, v := range c.cmds {
			if v.match(args) {
				fmt.Println(v.helpMsg)
				return nil
			}
		}
		return fmt.Errorf("command not found: %s", args)
	}
}

func reportStop(s *Session, exited bool, exitStatus int, file string, line int) {
	if exited {
		fmt.Printf("Process exited with status %d\n", exitStatus)
		return
	}
	if file == "" {
		fmt.Println("> stopped (no debug info at current pc)")
		return
	}
	fmt.Printf("> %s:%d\n", file, line)
}

func cmdContinue(s *Session, args string) error {
	stopped, err := s.Engine.Continue()
	if err != nil {
		return err
	}
	reportStop(s, stopped.Exited, stopped.ExitStatus, stopped.Line.File, stopped.Line.Line)
	return nil
}

func cmdBreak(s *Session, args string) error {
	if args == "" {
		return fmt.Errorf("usage: break <file:line>|<function>")
	}
	var addr uint64
	var err error
	var fn, file string
	var line int
	if idx := strings.LastIndex(args, ":"); idx >= 0 {
		file = args[:idx]
		line, err = strconv.Atoi(args[idx+1:])
		if err != nil {
			return fmt.Errorf("invalid line number in %q: %w", args, err)
		}
		addr, err = s.Info.StatementAddress(file, line)
		if err != nil {
			return err
		}
	} else {
		fnInfo, err := s.Info.FunctionByName(args)
		if err != nil {
			return err
		}
		addr, err = s.Info.FunctionEntryAfterPrologue(fnInfo)
		if err != nil {
			return err
		}
		fn, file, line = fnInfo.Name, fnInfo.DeclFile, fnInfo.DeclLine
	}
	bp, err := s.Proc.Breakpoints.Insert(addr, fn, file, line)
	if err != nil {
		return err
	}
	fmt.Printf("Breakpoint set at %s\n", bp.String())
	return nil
}

func cmdStep(s *Session, args string) error {
	stopped, err := s.Engine.StepIn()
	if err != nil {
		return err
	}
	reportStop(s, stopped.Exited, stopped.ExitStatus, stopped.Line.File, stopped.Line.Line)
	return nil
}

func cmdNext(s *Session, args string) error {
	stopped, err := s.Engine.StepOver()
	if err != nil {
		return err
	}
	reportStop(s, stopped.Exited, stopped.ExitStatus, stopped.Line.File, stopped.Line.Line)
	return nil
}

func cmdFinish(s *Session, args string) error {
	stopped, err := s.Engine.StepOut()
	if err != nil {
		return err
	}
	reportStop(s, stopped.Exited, stopped.ExitStatus, stopped.Line.File, stopped.Line.Line)
	return nil
}

func cmdStepInstruction(s *Session, args string) error {
	stopped, err := s.Engine.SingleStepWithBPCheck()
	if err != nil {
		return err
	}
	reportStop(s, stopped.Exited, stopped.ExitStatus, stopped.Line.File, stopped.Line.Line)
	return nil
}

func cmdStatus(s *Session, args string) error {
	if s.Proc.Exited() {
		fmt.Println("Process has exited.")
		return nil
	}
	pc, err := s.Proc.GetPC()
	if err != nil {
		return err
	}
	line, err := s.Info.LineEntryFromPC(pc)
	if err != nil {
		fmt.Printf("pc=%#x (no debug info)\n", pc)
		return nil
	}
	fn, err := s.Info.FunctionFromPC(pc)
	fnName := "?"
	if err == nil {
		fnName = fn.Name
	}
	fmt.Printf("pc=%#x %s at %s:%d\n", pc, fnName, line.File, line.Line)
	return nil
}

func cmdRegister(s *Session, args string) error {
	fields, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("usage: register dump|read <name>|write <name> <hex>")
	}
	regs, err := s.Proc.Registers()
	if err != nil {
		return err
	}
	switch fields[0] {
	case "dump":
		fmt.Print(regs.String())
	case "read":
		if len(fields) != 2 {
			return fmt.Errorf("usage: register read <name>")
		}
		val, err := regs.ByName(fields[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s = %#016x\n", fields[1], val)
	case "write":
		if len(fields) != 3 {
			return fmt.Errorf("usage: register write <name> <hex>")
		}
		val, err := parseHex(fields[2])
		if err != nil {
			return err
		}
		if err := s.Proc.WriteRegister(fields[1], val); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown register subcommand %q", fields[0])
	}
	return nil
}

func cmdMemory(s *Session, args string) error {
	fields, err := splitArgs(args)
	if err != nil {
		return err
	}
	if len(fields) < 2 {
		return fmt.Errorf("usage: memory read <addr>|write <addr> <hex>")
	}
	addr, err := parseHex(fields[1])
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", fields[1], err)
	}
	switch fields[0] {
	case "read":
		word, err := s.Proc.ReadWord(addr)
		if err != nil {
			return err
		}
		fmt.Printf("%#016x: %#016x\n", addr, word)
	case "write":
		if len(fields) != 3 {
			return fmt.Errorf("usage: memory write <addr> <hex>")
		}
		val, err := parseHex(fields[2])
		if err != nil {
			return err
		}
		if err := s.Proc.WriteWord(addr, val); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown memory subcommand %q", fields[0])
	}
	return nil
}

func cmdVariables(s *Session, args string) error {
	pc, err := s.Proc.GetPC()
	if err != nil {
		return err
	}
	fn, err := s.Info.FunctionFromPC(pc)
	if err != nil {
		return err
	}
	vars, err := s.Info.VariablesIn(fn)
	if err != nil {
		return err
	}
	regs, err := s.Proc.Registers()
	if err != nil {
		return err
	}
	for _, v := range vars {
		loc, err := s.Info.LocationOf(v, fn, regs)
		if err != nil {
			fmt.Printf("%-20s <%s>\n", v.Name, err)
			continue
		}
		var word uint64
		if loc.IsRegister {
			word, err = regs.ByDwarfNum(loc.RegNum)
		} else {
			word, err = s.Proc.ReadWord(loc.Address)
		}
		if err != nil {
			fmt.Printf("%-20s <%s>\n", v.Name, err)
			continue
		}
		fmt.Printf("%-20s %s = %#x\n", v.Name, v.TypeName, word)
	}
	return nil
}

func cmdBacktrace(s *Session, args string) error {
	pc, err := s.Proc.GetPC()
	if err != nil {
		return err
	}
	regs, err := s.Proc.Registers()
	if err != nil {
		return err
	}
	bp := regs.BP()
	depth := 0
	for {
		fn, err := s.Info.FunctionFromPC(pc)
		name := "?"
		if err == nil {
			name = fn.Name
		}
		line, lerr := s.Info.LineEntryFromPC(pc)
		if lerr == nil {
			fmt.Printf("#%-2d %#016x %s at %s:%d\n", depth, pc, name, line.File, line.Line)
		} else {
			fmt.Printf("#%-2d %#016x %s\n", depth, pc, name)
		}
		if name == "main" || bp == 0 {
			break
		}
		savedPC, err := s.Proc.ReadWord(bp + 8)
		if err != nil {
			break
		}
		savedBP, err := s.Proc.ReadWord(bp)
		if err != nil {
			break
		}
		pc, bp = savedPC, savedBP
		depth++
		if depth > 256 {
			break // runaway frame-pointer chain; stop rather than loop forever
		}
	}
	return nil
}

func cmdSymbol(s *Session, args string) error {
	syms := s.Info.LookupSymbols(args)
	for _, sym := range syms {
		fmt.Printf("%#016x %8d %-7s %s\n", sym.Value, sym.Size, sym.Kind, sym.Name)
	}
	return nil
}
