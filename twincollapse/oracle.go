// ProcessOracle speaks the one-line JSON protocol to a long-lived
// external line-graph checker.
package twincollapse

import (
	"bufio"
	"encoding/json"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/modgraph/modgraph/core"
)

// ProcessOracle is a LineGraphOracle backed by one external process. Each
// query writes a single line of JSON
//
//	[[node, [neighbour, ...]], ...]
//
// to the process's stdin and reads one "true"/"false" line back from its
// stdout. The handle is not safe for concurrent queries; the collapse
// walk that owns it is single-threaded anyway.
type ProcessOracle struct {
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// NewProcessOracle starts the oracle process. The caller owns the handle
// and must Close it.
func NewProcessOracle(path string, args ...string) (*ProcessOracle, error) {
	cmd := exec.Command(path, args...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrapf(ErrOracleUnavailable, "stdin pipe: %v", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrapf(ErrOracleUnavailable, "stdout pipe: %v", err)
	}
	if err = cmd.Start(); err != nil {
		return nil, errors.Wrapf(ErrOracleUnavailable, "starting %s: %v", path, err)
	}

	return &ProcessOracle{cmd: cmd, in: in, out: bufio.NewReader(stdout)}, nil
}

// IsLineGraph implements LineGraphOracle.
func (o *ProcessOracle) IsLineGraph(g *core.Graph) (bool, error) {
	entries := make([]any, 0, g.Len())
	for v := 0; v < g.Len(); v++ {
		entries = append(entries, []any{v, g.Neighbours(v)})
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return false, errors.Wrapf(ErrOracleProtocol, "encoding adjacency: %v", err)
	}
	payload = append(payload, '\n')
	if _, err = o.in.Write(payload); err != nil {
		return false, errors.Wrapf(ErrOracleUnavailable, "writing query: %v", err)
	}

	line, err := o.out.ReadString('\n')
	if err != nil {
		return false, errors.Wrapf(ErrOracleUnavailable, "reading reply: %v", err)
	}
	reply := strings.Trim(strings.TrimSpace(line), `"`)
	switch strings.ToLower(reply) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.Wrapf(ErrOracleProtocol, "reply %q", reply)
	}
}

// Close shuts the process down: closing its input lets it exit, then the
// exit status is collected.
func (o *ProcessOracle) Close() error {
	if err := o.in.Close(); err != nil {
		_ = o.cmd.Process.Kill()
		_ = o.cmd.Wait()

		return errors.Wrapf(ErrOracleUnavailable, "closing stdin: %v", err)
	}
	if err := o.cmd.Wait(); err != nil {
		return errors.Wrapf(ErrOracleUnavailable, "waiting for exit: %v", err)
	}

	return nil
}
