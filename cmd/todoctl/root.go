package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-service/internal/adapters/clients/todoapi"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
	"github.com/jsamuelsen11/todo-service/internal/query"
	"github.com/jsamuelsen11/todo-service/internal/view"
)

// maxParallel bounds how many ids a multi-id command works on at once.
const maxParallel = 4

// errReported marks a failure already printed to the user.
var errReported = errors.New("command failed")

type rootOptions struct {
	profile   string
	configDir string
	baseURL   string
}

// listFlags are the view state flags shared by list and browse.
type listFlags struct {
	status   string
	filter   string
	page     int
	pageSize int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "all", "all, completed or active")
	cmd.Flags().StringVar(&f.filter, "filter", "", "case-insensitive title substring")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, from 1")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 5, "todos per page")
}

// state parses the flags the way a URL is parsed, so bad values fall back
// to their defaults.
func (f *listFlags) state() view.State {
	v := url.Values{}
	v.Set(view.ParamStatus, f.status)
	v.Set(view.ParamPage, strconv.Itoa(f.page))
	v.Set(view.ParamPageSize, strconv.Itoa(f.pageSize))
	if f.filter != "" {
		v.Set(view.ParamFilter, f.filter)
	}
	return view.ParseState(v)
}

// env is what every subcommand works with, built once flags are parsed.
type env struct {
	logger *slog.Logger
	api    *todoapi.Client
	cache  *query.Client
	redis  *redis.Client

	// checks are the dependencies doctor probes.
	checks []ports.HealthChecker
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	e := &env{}

	cmd := &cobra.Command{
		Use:           "todoctl",
		Short:         "Manage todos on a todo API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, opts)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", config.ProfileFromEnv(), "config profile")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding the config files")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "todo API base URL (overrides client.base_url)")

	cmd.AddCommand(
		newListCmd(e),
		newGetCmd(e),
		newAddCmd(e),
		newEditCmd(e),
		newStatusCmd(e, "done", true),
		newStatusCmd(e, "undo", false),
		newRmCmd(e),
		newBrowseCmd(e),
		newDoctorCmd(e),
	)
	return cmd
}

func (e *env) init(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.Client.BaseURL = opts.baseURL
	}

	e.logger = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	cmd.SetContext(httpclient.WithCorrelationID(cmd.Context(), uuid.NewString()))

	hc := httpclient.New(&cfg.Client, "todo-api", nil, e.logger)
	e.api = todoapi.NewClient(hc, e.logger)
	e.checks = append(e.checks, health.NewFunc("todo-api", func(ctx context.Context) error {
		_, err := e.api.ListTodos(ctx, todo.ListQuery{PageSize: 1})
		return err
	}))

	var store query.Store
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		e.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		rs := query.NewRedisStore(e.redis, cfg.Cache.TTL)
		e.checks = append(e.checks, rs)
		store = rs
	default:
		store = query.NewMemoryStore(cfg.Cache.TTL)
	}
	e.cache = query.NewClient(e.api, store, nil, e.logger)
	return nil
}

func (e *env) close() error {
	if e.redis == nil {
		return nil
	}
	return e.redis.Close()
}
