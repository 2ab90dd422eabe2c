// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphbench/backend"
	"github.com/katalvlaran/graphbench/cli"
)

func attributed(opts ...backend.Option) backend.Backend { return backend.NewAttributed(opts...) }
func numerical(opts ...backend.Option) backend.Backend  { return backend.NewNumerical(opts...) }

// CommandSuite drives Execute end to end with in-memory streams.
type CommandSuite struct {
	suite.Suite
	stdout, stderr bytes.Buffer
}

func (s *CommandSuite) SetupTest() {
	s.stdout.Reset()
	s.stderr.Reset()
}

func (s *CommandSuite) exec(factory cli.Factory, args ...string) int {
	return cli.Execute(append([]string{"/usr/local/bin/graphbench-core"}, args...), factory, &s.stdout, &s.stderr)
}

// chdir moves into a fresh directory for the rest of the test.
func (s *CommandSuite) chdir() string {
	dir := s.T().TempDir()
	prev, err := os.Getwd()
	require.NoError(s.T(), err)
	require.NoError(s.T(), os.Chdir(dir))
	s.T().Cleanup(func() { _ = os.Chdir(prev) })

	return dir
}

func (s *CommandSuite) TestMissingOperands() {
	cases := map[string][]string{
		"missing NUM_V operand": nil,
		"missing NUM_E operand": {"10"},
		"missing X operand":     {"10", "10"},
	}
	for msg, args := range cases {
		s.SetupTest()
		require.Equal(s.T(), 1, s.exec(attributed, args...))
		require.Equal(s.T(),
			"error: "+msg+"\nTry 'graphbench-core --help' for more information.\n",
			s.stderr.String())
		require.Empty(s.T(), s.stdout.String())
	}
}

func (s *CommandSuite) TestInvalidOperands() {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"abc", "1", "0"}, "invalid NUM_V operand 'abc': invalid syntax"},
		{[]string{"0", "1", "0"}, "invalid NUM_V operand '0': must be greater than 0"},
		{[]string{"1", "2x", "0"}, "invalid NUM_E operand '2x': invalid syntax"},
		{[]string{"1", "1", "1.5"}, "invalid X operand '1.5': must be between 0 and 1"},
		{[]string{"1", "1", "NaN"}, "invalid X operand 'NaN': must be between 0 and 1"},
		{[]string{"1", "1", "0", "9"}, "extra operand '9'"},
	}
	for _, c := range cases {
		s.SetupTest()
		require.Equal(s.T(), 1, s.exec(numerical, c.args...), c.want)
		require.True(s.T(), strings.HasPrefix(s.stderr.String(), "error: "+c.want+"\n"), s.stderr.String())
		require.Contains(s.T(), s.stderr.String(), "--help")
	}
}

func (s *CommandSuite) TestUnknownFlag() {
	require.Equal(s.T(), 1, s.exec(numerical, "--nope", "1", "1", "0"))
	require.Contains(s.T(), s.stderr.String(), "unknown flag: --nope")
	require.Contains(s.T(), s.stderr.String(), "Try 'graphbench-core --help'")
}

func (s *CommandSuite) TestHelp() {
	require.Equal(s.T(), 0, s.exec(numerical, "--help"))
	require.Contains(s.T(), s.stdout.String(), "graphbench-core NUM_V NUM_E X")
	require.Contains(s.T(), s.stdout.String(), "--legacy-names")
}

func (s *CommandSuite) TestDebugRun() {
	require.Equal(s.T(), 0, s.exec(attributed, "-d", "--seed", "11", "6", "6", "0.5"))

	out := s.stdout.String()
	require.Contains(s.T(), out, "Initial graph:\ngraph core: 9 vertices, 9 edges\n")
	require.Contains(s.T(), out, "Final graph:\ngraph core: 9 vertices, 6 edges\n")
	require.Contains(s.T(), s.stderr.String(), "adding vertex")
	require.Contains(s.T(), s.stderr.String(), "delete")
}

func (s *CommandSuite) TestQuietRun() {
	require.Equal(s.T(), 0, s.exec(numerical, "--seed", "1", "20", "30", "1"))
	require.Empty(s.T(), s.stdout.String())
	require.NotContains(s.T(), s.stderr.String(), "adding edge")
	require.Contains(s.T(), s.stderr.String(), "done")
}

// TestSeedReplay verifies that a fixed seed reproduces the same final graph.
func (s *CommandSuite) TestSeedReplay() {
	for _, factory := range []cli.Factory{attributed, numerical} {
		s.SetupTest()
		require.Equal(s.T(), 0, s.exec(factory, "-d", "--seed", "99", "12", "20", "0.5"))
		first := s.stdout.String()

		s.SetupTest()
		require.Equal(s.T(), 0, s.exec(factory, "-d", "--seed", "99", "12", "20", "0.5"))
		require.Equal(s.T(), first, s.stdout.String())
	}
}

func (s *CommandSuite) TestWrite() {
	dir := s.chdir()
	require.Equal(s.T(), 0, s.exec(numerical, "-w", "--seed", "3", "4", "4", "1"))

	for _, name := range []string{"graphbench-core.dot", "graphbench-core.graphml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(s.T(), err, name)
		require.Contains(s.T(), s.stdout.String(), "Wrote "+name+"\n")
	}
}

func (s *CommandSuite) TestReport() {
	path := filepath.Join(s.T().TempDir(), "run.json")
	require.Equal(s.T(), 0, s.exec(attributed, "--seed", "7", "--report", path, "5", "5", "1"))

	data, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	var rep struct {
		Backend string `json:"backend"`
		Config  struct {
			Seed int64 `json:"seed"`
		} `json:"config"`
		Deleted int `json:"deleted"`
	}
	require.NoError(s.T(), json.Unmarshal(data, &rep))
	require.Equal(s.T(), backend.AttributedName, rep.Backend)
	require.Equal(s.T(), int64(7), rep.Config.Seed)
	require.Equal(s.T(), 5, rep.Deleted)
}

func (s *CommandSuite) TestReportUnwritable() {
	path := filepath.Join(s.T().TempDir(), "missing", "run.json")
	require.Equal(s.T(), 1, s.exec(numerical, "--seed", "7", "--report", path, "2", "2", "0"))
	require.Contains(s.T(), s.stderr.String(), "error: report: ")
	require.NotContains(s.T(), s.stderr.String(), "--help")
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func TestParseOperands(t *testing.T) {
	ops, err := cli.ParseOperands([]string{"10", "20", "0.25"})
	require.NoError(t, err)
	require.Equal(t, cli.Operands{Vertices: 10, Edges: 20, Scale: 0.25}, ops)

	for _, args := range [][]string{{"1", "1", "0"}, {"1", "1", "1"}, {"1", "1", "1e-3"}} {
		_, err = cli.ParseOperands(args)
		require.NoError(t, err, args)
	}

	_, err = cli.ParseOperands([]string{"99999999999999999999", "1", "0"})
	require.ErrorIs(t, err, cli.ErrUsage)
	require.EqualError(t, err, "invalid NUM_V operand '99999999999999999999': value out of range")
}
