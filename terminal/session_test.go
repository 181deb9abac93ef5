package terminal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCommands() *Commands {
	c := &Commands{}
	c.cmds = []command{
		{aliases: []string{"break", "b"}, cmdFn: func(s *Session, args string) error { return nil }},
		{aliases: []string{"backtrace", "bt"}, cmdFn: func(s *Session, args string) error { return nil }},
		{aliases: []string{"step", "s"}, cmdFn: func(s *Session, args string) error { return nil }},
	}
	return c
}

func TestFindExactAliasMatch(t *testing.T) {
	c := testCommands()
	require.NotNil(t, c.Find("b"), "exact alias \"b\" should resolve")
	require.NotNil(t, c.Find("break"), "exact alias \"break\" should resolve")
}

func TestFindUnambiguousPrefixMatch(t *testing.T) {
	c := testCommands()
	require.NotNil(t, c.Find("bre"), "unambiguous prefix \"bre\" should resolve to break")
	require.NotNil(t, c.Find("st"), "unambiguous prefix \"st\" should resolve to step")
}

func TestFindAmbiguousPrefixAcrossCommandsReturnsNil(t *testing.T) {
	c := &Commands{cmds: []command{
		{aliases: []string{"step1"}, cmdFn: func(s *Session, args string) error { return nil }},
		{aliases: []string{"step2"}, cmdFn: func(s *Session, args string) error { return nil }},
	}}
	require.Nil(t, c.Find("step"), "ambiguous prefix \"step\" should return nil")
}

func TestFindNoMatchReturnsNil(t *testing.T) {
	c := testCommands()
	require.Nil(t, c.Find("zzz"), "no alias starts with \"zzz\"")
}
