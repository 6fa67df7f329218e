package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dgnsrekt/livefeed/internal/announce"
	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/notify"
	"github.com/dgnsrekt/livefeed/internal/room"
)

type Config struct {
	Room       RoomConfig     `mapstructure:"room"`
	Connection feed.Config    `mapstructure:"connection"`
	Signing    SigningConfig  `mapstructure:"signing"`
	Queue      QueueConfig    `mapstructure:"queue"`
	Announce   AnnounceConfig `mapstructure:"announce"`
	Archive    ArchiveConfig  `mapstructure:"archive"`
	Server     ServerConfig   `mapstructure:"server"`
	Notify     notify.Config  `mapstructure:"notify"`
	Logging    LoggingConfig  `mapstructure:"logging"`
}

type RoomConfig struct {
	ID            string        `mapstructure:"id"`
	BaseURL       string        `mapstructure:"base_url"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryCount    int           `mapstructure:"retry_count"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

// Signing oracle modes.
const (
	SigningStatic  = "static"
	SigningScript  = "script"
	SigningCommand = "command"
)

type SigningConfig struct {
	Mode    string        `mapstructure:"mode"`
	Token   string        `mapstructure:"token"`
	Script  string        `mapstructure:"script"`
	Command string        `mapstructure:"command"`
	Args    []string      `mapstructure:"args"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type QueueConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// Speaker kinds.
const (
	SpeakerLog      = "log"
	SpeakerCommand  = "command"
	// SpeakerExternal leaves the queue to HTTP consumers of /queue/take.
	SpeakerExternal = "external"
)

type AnnounceConfig struct {
	Enabled      bool               `mapstructure:"enabled"`
	Speaker      string             `mapstructure:"speaker"`
	Command      string             `mapstructure:"command"`
	Args         []string           `mapstructure:"args"`
	PollInterval time.Duration      `mapstructure:"poll_interval"`
	Templates    announce.Templates `mapstructure:"templates"`
}

type ArchiveConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Directory string        `mapstructure:"directory"`
	Interval  time.Duration `mapstructure:"interval"`
}

type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type LoggingConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Directory string `mapstructure:"directory"`
	Level     string `mapstructure:"level"`
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetDefault("room.id", "")
	v.SetDefault("room.base_url", room.DefaultBaseURL)
	v.SetDefault("room.rate_per_second", 0.5)
	v.SetDefault("room.timeout", "15s")
	v.SetDefault("room.retry_count", 2)
	v.SetDefault("room.retry_delay", "2s")

	v.SetDefault("connection.push_url", feed.DefaultPushURL)
	v.SetDefault("connection.user_agent", feed.DefaultUserAgent)
	v.SetDefault("connection.heartbeat_interval", feed.DefaultHeartbeatInterval.String())
	v.SetDefault("connection.stale_after", feed.DefaultStaleAfter.String())
	v.SetDefault("connection.write_timeout", "10s")
	v.SetDefault("connection.handshake_timeout", "15s")
	v.SetDefault("connection.max_message_size", 8<<20)
	v.SetDefault("connection.backoff.initial", "1s")
	v.SetDefault("connection.backoff.max", "60s")
	v.SetDefault("connection.backoff.max_retries", 0)

	v.SetDefault("signing.mode", SigningStatic)
	v.SetDefault("signing.token", "")
	v.SetDefault("signing.script", "")
	v.SetDefault("signing.command", "")
	v.SetDefault("signing.timeout", "10s")

	v.SetDefault("queue.capacity", 20)

	v.SetDefault("announce.enabled", false)
	v.SetDefault("announce.speaker", SpeakerLog)
	v.SetDefault("announce.command", "")
	v.SetDefault("announce.poll_interval", "1s")
	v.SetDefault("announce.templates.welcome", []string{"欢迎$username来到直播间"})
	v.SetDefault("announce.templates.follow", []string{"感谢$username的关注"})
	v.SetDefault("announce.templates.gift", []string{"感谢$username送出的$gift"})

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.directory", "live_data")
	v.SetDefault("archive.interval", "5s")

	v.SetDefault("server.enabled", false)
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("notify.enabled", false)
	v.SetDefault("notify.server", "https://ntfy.sh")
	v.SetDefault("notify.topic", "")
	v.SetDefault("notify.priority", "default")
	v.SetDefault("notify.tags", "tv")
	v.SetDefault("notify.token", "")

	v.SetDefault("logging.enabled", false)
	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.level", "info")

	// Environment variable support
	v.SetEnvPrefix("LIVEFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// ntfy settings keep their conventional names
	_ = v.BindEnv("notify.enabled", "NTFY_ENABLED")
	_ = v.BindEnv("notify.server", "NTFY_SERVER")
	_ = v.BindEnv("notify.topic", "NTFY_TOPIC")
	_ = v.BindEnv("notify.priority", "NTFY_PRIORITY")
	_ = v.BindEnv("notify.tags", "NTFY_TAGS")
	_ = v.BindEnv("notify.token", "NTFY_TOKEN")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("livefeed")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}
	return v
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Load reads configuration from configPath, or from livefeed.yaml in
// ./configs or the working directory when empty. A missing file is not an
// error; defaults and LIVEFEED_* environment variables apply.
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)
	if err := readConfig(v); err != nil {
		return nil, err
	}
	return decode(v)
}

// Watch re-reads the config file whenever it changes and passes each valid
// result to onChange. It returns false when there is no file to watch.
func Watch(configPath string, logger *zap.Logger, onChange func(*Config)) (bool, error) {
	v := newViper(configPath)
	if err := readConfig(v); err != nil {
		return false, err
	}
	if v.ConfigFileUsed() == "" {
		return false, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			logger.Warn("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("file", e.Name))
		onChange(cfg)
	})
	v.WatchConfig()
	return true, nil
}
