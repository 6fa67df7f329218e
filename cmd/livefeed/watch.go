package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dgnsrekt/livefeed/internal/announce"
	"github.com/dgnsrekt/livefeed/internal/archive"
	"github.com/dgnsrekt/livefeed/internal/config"
	"github.com/dgnsrekt/livefeed/internal/feed"
	"github.com/dgnsrekt/livefeed/internal/metrics"
	"github.com/dgnsrekt/livefeed/internal/notify"
	"github.com/dgnsrekt/livefeed/internal/queue"
	"github.com/dgnsrekt/livefeed/internal/server"
)

type watchOptions struct {
	roomID string
	server bool
	addr   string
	quiet  bool
}

func watchCmd() *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch [room]",
		Short: "Connect to a live room and print its events",
		Long: `Connect to a live room and print its events.

The room is the id from the live.douyin.com URL. When omitted, room.id from
the config (or LIVEFEED_ROOM_ID) is used.

Examples:
  livefeed watch 646454278948
  livefeed watch 646454278948 --server --addr :9090`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.roomID = args[0]
			}
			return runWatch(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.server, "server", false, "expose the HTTP surface while watching")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (overrides server.addr)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print events to stdout")

	return cmd
}

func serveCmd() *cobra.Command {
	opts := watchOptions{server: true, quiet: true}

	cmd := &cobra.Command{
		Use:   "serve [room]",
		Short: "Watch a live room and serve its state over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.roomID = args[0]
			}
			return runWatch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (overrides server.addr)")

	return cmd
}

func runWatch(ctx context.Context, opts watchOptions) error {
	roomID := opts.roomID
	if roomID == "" {
		roomID = cfg.Room.ID
	}
	if roomID == "" {
		return errors.New("no room given: pass it as an argument or set room.id")
	}

	serving := opts.server || cfg.Server.Enabled
	if err := checkSpeaker(&cfg.Announce, serving); err != nil {
		return err
	}

	signer, err := buildSigner(cfg, logger.Named("sign"))
	if err != nil {
		return err
	}

	m := metrics.New()
	live := feed.NewLiveData()
	bus := feed.NewBus(logger.Named("bus"))
	defer bus.Close()

	var (
		sinks []feed.Sinks
		q     *queue.Queue
		ann   *announce.Announcer
		arch  *archive.Writer
	)
	if cfg.Announce.Enabled {
		q = queue.New(queue.WithCapacity(cfg.Queue.Capacity))
		ann = announce.New(q, cfg.Announce.Templates, logger.Named("announce"),
			announce.WithMetrics(m),
			announce.WithPollInterval(cfg.Announce.PollInterval),
		)
		sinks = append(sinks, ann.Sinks())
	}
	if cfg.Archive.Enabled {
		arch = archive.New(cfg.Archive.Directory, live, logger.Named("archive"),
			archive.WithInterval(cfg.Archive.Interval),
		)
		sinks = append(sinks, arch.Sinks())
	}

	mgr := feed.NewManager(cfg.Connection, buildResolver(cfg, logger.Named("room")), signer, logger.Named("feed"),
		feed.WithSinks(feed.MergeSinks(sinks...)),
		feed.WithBus(bus),
		feed.WithLiveData(live),
		feed.WithNotifier(notify.New(&cfg.Notify, logger.Named("notify"))),
		feed.WithMetrics(m),
	)

	logger.Info("watching room",
		zap.String("room", roomID),
		zap.Bool("announce", cfg.Announce.Enabled),
		zap.Bool("archive", cfg.Archive.Enabled),
		zap.Bool("server", serving),
	)

	g, gctx := errgroup.WithContext(ctx)

	if !opts.quiet {
		sub := bus.Subscribe()
		g.Go(func() error {
			printEvents(gctx, sub, os.Stdout)
			return nil
		})
	}

	if ann != nil {
		if speaker := buildSpeaker(&cfg.Announce, logger.Named("speaker")); speaker != nil {
			goAnnounce(gctx, g, ann, speaker)
		}
		watching, err := config.Watch(cfgFile, logger.Named("config"), func(c *config.Config) {
			ann.SetTemplates(c.Announce.Templates)
		})
		if err != nil {
			logger.Warn("config watch unavailable", zap.Error(err))
		} else if watching {
			logger.Debug("reloading announce templates on config change")
		}
	}

	if arch != nil {
		g.Go(func() error { return arch.Run(gctx) })
	}

	if serving {
		addr := cfg.Server.Addr
		if opts.addr != "" {
			addr = opts.addr
		}
		srv := server.NewServer(mgr, q, m, logger.Named("server"))
		router := server.NewRouter(srv, logger.Named("http"))
		g.Go(func() error {
			if err := server.ListenAndServe(gctx, addr, router, logger.Named("http")); err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		return mgr.Run(gctx, roomID)
	})

	if err := g.Wait(); err != nil {
		logger.Error("watch stopped", zap.Error(err))
		return err
	}
	logger.Info("watch stopped", zap.String("summary", live.String()))
	return nil
}

// goAnnounce runs the announcer in g. Speaker failures are logged and
// counted by the announcer and never cancel the group.
func goAnnounce(ctx context.Context, g *errgroup.Group, ann *announce.Announcer, speaker announce.Speaker) {
	g.Go(func() error {
		ann.Run(ctx, speaker)
		return nil
	})
}
