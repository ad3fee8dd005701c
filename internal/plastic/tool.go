// Package plastic wraps invocations of the Plastic SCM cm client.
package plastic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codice-tools/plastic-ctl/internal/config"
	"github.com/codice-tools/plastic-ctl/internal/errors"
	"github.com/codice-tools/plastic-ctl/internal/logging"
	"github.com/codice-tools/plastic-ctl/internal/system"
)

// Tool is a handle to the cm client. All invocations are synchronous;
// a single per-invocation timeout bounds each call.
type Tool struct {
	exe       string
	extraArgs []string
	timeout   time.Duration
	exec      system.CommandExecutor
}

// NewTool builds a Tool from configuration and an executor.
func NewTool(cfg *config.Config, exec system.CommandExecutor) *Tool {
	return &Tool{
		exe:       cfg.CMPath,
		extraArgs: cfg.ExtraArgv(),
		timeout:   cfg.Timeout(),
		exec:      exec,
	}
}

// Exe returns the configured cm binary path.
func (t *Tool) Exe() string {
	return t.exe
}

// Run executes `cm <subcommand> <args...>` and returns its combined output.
// On failure the output is folded into the returned error so exit-status
// context reaches the caller.
func (t *Tool) Run(ctx context.Context, subcommand string, args ...string) ([]byte, error) {
	argv := make([]string, 0, len(t.extraArgs)+len(args)+1)
	argv = append(argv, subcommand)
	argv = append(argv, args...)
	argv = append(argv, t.extraArgs...)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	logging.Debug("running cm", "subcommand", subcommand, "args", args)

	output, err := t.exec.Execute(ctx, t.exe, argv...)
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			err = fmt.Errorf("%s: %w", detail, err)
		}
		return output, errors.ToolFailed(subcommand, err)
	}
	return output, nil
}

// Version asks the client for its version string.
func (t *Tool) Version(ctx context.Context) (string, error) {
	output, err := t.Run(ctx, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
