package announce

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// Speaker voices one announcement. Speak should block until playback ends.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// LogSpeaker writes announcements to the log instead of playing them.
type LogSpeaker struct {
	Logger *zap.Logger
}

func (s LogSpeaker) Speak(_ context.Context, text string) error {
	s.Logger.Info("announce", zap.String("text", text))
	return nil
}

// CommandSpeaker runs an external text-to-speech program once per
// announcement, passing the text as its last argument.
type CommandSpeaker struct {
	Path string
	Args []string
}

func (s CommandSpeaker) Speak(ctx context.Context, text string) error {
	args := append(append([]string(nil), s.Args...), text)
	out, err := exec.CommandContext(ctx, s.Path, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", s.Path, err, out)
	}
	return nil
}
