package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/OopsException/ghost-followers/pkg/compare"
	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
	"github.com/OopsException/ghost-followers/pkg/export"
	gfio "github.com/OopsException/ghost-followers/pkg/io"
	"github.com/OopsException/ghost-followers/pkg/observability"
)

// Runner executes comparison runs.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger (log.Default() if nil).
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → extract → compare → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	followersDoc, err := r.load(ctx, export.DocFollowers, opts.FollowersPath, opts.FollowersJSON, opts)
	if err != nil {
		return nil, err
	}
	followingDoc, err := r.load(ctx, export.DocFollowing, opts.FollowingPath, opts.FollowingJSON, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	logger.Debug("loaded documents", "duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Extract
	extractStart := time.Now()
	followers, err := extract(ctx, hooks, export.DocFollowers, export.Followers, followersDoc)
	if err != nil {
		return nil, err
	}
	following, err := extract(ctx, hooks, export.DocFollowing, export.Following, followingDoc)
	if err != nil {
		return nil, err
	}
	result.Stats.ExtractTime = time.Since(extractStart)
	logger.Debug("extracted usernames",
		"followers", len(followers),
		"following", len(following),
		"duration", result.Stats.ExtractTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Compare
	compareStart := time.Now()
	result.Comparison = compare.New(followers, following)
	result.Stats.CompareTime = time.Since(compareStart)
	result.Stats.Followers, result.Stats.Following, result.Stats.NotFollowingBack = result.Comparison.Counts()
	hooks.OnCompareComplete(ctx, result.Stats.NotFollowingBack, result.Stats.CompareTime)

	logger.Info("compared accounts",
		"followers", result.Stats.Followers,
		"following", result.Stats.Following,
		"not_following_back", result.Stats.NotFollowingBack)

	// Stage 4: Write
	if opts.Write {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		writeStart := time.Now()
		files, err := gfio.ExportResult(result.Comparison, opts.OutDir)
		if err != nil {
			return nil, gferrors.Wrap(gferrors.GetCode(err), err, "write output")
		}
		result.Files = files
		result.Stats.WriteTime = time.Since(writeStart)
		logger.Info("wrote output", "dir", opts.OutDir, "duration", result.Stats.WriteTime)
	}

	return result, nil
}

// load reads one document from raw JSON or from a path.
func (r *Runner) load(ctx context.Context, document, path, raw string, opts Options) (any, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, document)
	start := time.Now()

	var (
		doc any
		err error
	)
	if raw != "" {
		doc, err = gfio.ParseJSON(raw)
	} else {
		opts.Logger.Debug("reading document", "document", document, "path", path)
		doc, err = gfio.ImportJSONFrom(path, opts.Stdin)
	}
	hooks.OnLoadComplete(ctx, document, time.Since(start), err)
	if err != nil {
		return nil, gferrors.Wrap(gferrors.GetCode(err), err, "load %s", document)
	}
	return doc, nil
}

// extract runs fn and reports the outcome to hooks. Shape errors are
// returned unwrapped so their code survives.
func extract(ctx context.Context, hooks observability.PipelineHooks, document string, fn func(any) ([]string, error), doc any) ([]string, error) {
	start := time.Now()
	users, err := fn(doc)
	hooks.OnExtractComplete(ctx, document, len(users), time.Since(start), err)
	return users, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
