package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/announce"
	"github.com/dgnsrekt/livefeed/internal/config"
	"github.com/dgnsrekt/livefeed/internal/room"
	"github.com/dgnsrekt/livefeed/internal/sign"
)

func buildResolver(cfg *config.Config, logger *zap.Logger) *room.HTTPResolver {
	return room.NewResolver(
		cfg.Room.BaseURL,
		cfg.Connection.UserAgent,
		cfg.Room.RatePerSecond,
		cfg.Room.Timeout,
		cfg.Room.RetryDelay,
		cfg.Room.RetryCount,
		logger,
	)
}

// buildSigner picks the oracle named by signing.mode. An empty static token
// makes every signature fall back to the sentinel.
func buildSigner(cfg *config.Config, logger *zap.Logger) (*sign.Signer, error) {
	var oracle sign.Oracle
	switch cfg.Signing.Mode {
	case config.SigningScript:
		o, err := sign.LoadScriptOracle(cfg.Signing.Script, cfg.Connection.UserAgent)
		if err != nil {
			return nil, fmt.Errorf("loading signing script: %w", err)
		}
		oracle = o
	case config.SigningCommand:
		oracle = sign.CommandOracle{Path: cfg.Signing.Command, Args: cfg.Signing.Args}
	default:
		oracle = sign.StaticOracle(cfg.Signing.Token)
	}
	return sign.NewSigner(sign.WithTimeout(oracle, cfg.Signing.Timeout), logger), nil
}

// buildSpeaker returns nil when announcements are drained over HTTP.
// checkSpeaker rejects the external speaker when nothing will serve the
// queue. The server may be switched on by flag, so this runs after flags
// are applied rather than during config validation.
func checkSpeaker(cfg *config.AnnounceConfig, serving bool) error {
	if cfg.Enabled && cfg.Speaker == config.SpeakerExternal && !serving {
		return fmt.Errorf("announce.speaker %q needs the HTTP server: set server.enabled or pass --server", config.SpeakerExternal)
	}
	return nil
}

func buildSpeaker(cfg *config.AnnounceConfig, logger *zap.Logger) announce.Speaker {
	switch cfg.Speaker {
	case config.SpeakerCommand:
		return announce.CommandSpeaker{Path: cfg.Command, Args: cfg.Args}
	case config.SpeakerExternal:
		return nil
	default:
		return announce.LogSpeaker{Logger: logger}
	}
}
