package sign

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandOracle runs an external program with the stub as its last argument
// and reads the signature from stdout.
type CommandOracle struct {
	Path string
	Args []string
}

func (c CommandOracle) Sign(ctx context.Context, stub string) (string, error) {
	args := append(append([]string(nil), c.Args...), stub)
	cmd := exec.CommandContext(ctx, c.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c.Path, err, msg)
		}
		return "", fmt.Errorf("%s: %w", c.Path, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
