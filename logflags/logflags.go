// Package logflags controls per-subsystem debug logging, enabled with
// `godbg --log --log-output=proc,dbginfo,...`.
package logflags

import (
	"errors"
	"io/ioutil"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

var proc = false
var dbginfo = false
var stepengine = false
var fault = false

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	return logger
}

// Proc returns true if the proc package should log.
func Proc() bool {
	return proc
}

// ProcLogger returns a logger for ptrace/breakpoint activity.
func ProcLogger() *logrus.Entry {
	return makeLogger(proc, logrus.Fields{"layer": "proc"})
}

// DebugInfo returns true if the dbginfo package should log.
func DebugInfo() bool {
	return dbginfo
}

// DebugInfoLogger returns a logger for ELF/DWARF resolution.
func DebugInfoLogger() *logrus.Entry {
	return makeLogger(dbginfo, logrus.Fields{"layer": "dbginfo"})
}

// StepEngine returns true if the stepengine package should log.
func StepEngine() bool {
	return stepengine
}

// StepEngineLogger returns a logger for source-level stepping.
func StepEngineLogger() *logrus.Entry {
	return makeLogger(stepengine, logrus.Fields{"layer": "stepengine"})
}

// Fault returns true if the fault package should log.
func Fault() bool {
	return fault
}

// FaultLogger returns a logger for the fault-localization driver.
func FaultLogger() *logrus.Entry {
	return makeLogger(fault, logrus.Fields{"layer": "fault"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets package-level debug flags based on the contents of logstr, a
// comma separated list of subsystem names.
func Setup(logFlag bool, logstr string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(ioutil.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "proc"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "proc":
			proc = true
		case "dbginfo":
			dbginfo = true
		case "stepengine":
			stepengine = true
		case "fault":
			fault = true
		}
	}
	return nil
}
