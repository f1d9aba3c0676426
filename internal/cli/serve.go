package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowribbon/internal/server"
	"github.com/matzehuels/flowribbon/pkg/cache"
	"github.com/matzehuels/flowribbon/pkg/pipeline"
	"github.com/matzehuels/flowribbon/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	storeKind string
	mongoURI  string
	mongoDB   string
	mongoColl string
	cacheKind string
	redisURL  string
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The serve command exposes rendering and dataset storage over HTTP:
POST /api/render renders inline observations, /api/datasets stores
named datasets, and /api/datasets/{id}/diagram.{format} renders stored
datasets on demand.

Datasets live in memory by default; pass --store mongo for durable
storage. Render results are cached on disk by default; pass --cache
redis to share the cache between instances, or --cache none to disable
caching.

Connection endpoints can also come from the FLOWRIBBON_MONGO_URI and
FLOWRIBBON_REDIS_URL environment variables; explicit flags take
precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.storeKind, "store", "memory", "dataset store backend: memory, mongo")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", os.Getenv("FLOWRIBBON_MONGO_URI"), "MongoDB connection URI (with --store mongo)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", store.DefaultDatabase, "MongoDB database name")
	cmd.Flags().StringVar(&opts.mongoColl, "mongo-collection", store.DefaultCollection, "MongoDB collection name")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", "file", "render cache backend: file, redis, none")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", os.Getenv("FLOWRIBBON_REDIS_URL"), "Redis connection URL (with --cache redis)")

	return cmd
}

// runServe builds the configured backends and serves until ctx is done.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	st, err := newStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	cch, err := newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(cch, nil, c.Logger)
	defer runner.Close()

	srv := server.New(st, runner, c.Logger)

	printKeyValue("Address", opts.addr)
	printKeyValue("Store", opts.storeKind)
	printKeyValue("Cache", opts.cacheKind)
	printNewline()
	printInfo("%s", "API at "+StyleLink.Render(apiURL(opts.addr)))

	return srv.ListenAndServe(ctx, opts.addr)
}

// newStore builds the dataset store selected by --store.
func newStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	switch opts.storeKind {
	case "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        opts.mongoURI,
			Database:   opts.mongoDB,
			Collection: opts.mongoColl,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %q (must be memory or mongo)", opts.storeKind)
	}
}

// newServeCache builds the render cache selected by --cache.
func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch opts.cacheKind {
	case "file":
		return newCache(false)
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisURL)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q (must be file, redis, or none)", opts.cacheKind)
	}
}

// apiURL turns a listen address into a browsable URL.
func apiURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
