// Package pipeline provides the load → extract → compare pipeline.
//
// This package wires the pure core (username, export, compare) to its I/O
// collaborators so the CLI and the HTTP API share one behavior.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read both export documents from files, stdin, or raw JSON
//  2. Extract: Pull canonical usernames out of each document
//  3. Compare: Compute who does not follow back
//  4. Write: Optionally export the result to an output directory
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    FollowersPath: "followers_1.json",
//	    FollowingPath: "following.json",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range result.Comparison.NotFollowingBack() {
//	    fmt.Println(u)
//	}
package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/OopsException/ghost-followers/pkg/compare"
	"github.com/OopsException/ghost-followers/pkg/config"
	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
	gfio "github.com/OopsException/ghost-followers/pkg/io"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one comparison run.
type Options struct {
	// Sources. Exactly one followers source and one following source,
	// or ExportDir alone.
	FollowersPath string
	FollowersJSON string
	FollowingPath string
	FollowingJSON string
	ExportDir     string

	// Output
	Write  bool
	OutDir string

	// Runtime options
	Stdin  io.Reader
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Comparison holds the three username lists.
	Comparison *compare.Result

	// Files lists the written outputs (zero when Options.Write is false).
	Files gfio.Files

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Followers        int
	Following        int
	NotFollowingBack int
	LoadTime         time.Duration
	ExtractTime      time.Duration
	CompareTime      time.Duration
	WriteTime        time.Duration
}

// Preview returns up to n not-following-back usernames.
func (r *Result) Preview(n int) []string {
	users := r.Comparison.NotFollowingBack()
	if n < 0 {
		n = 0
	}
	if len(users) > n {
		users = users[:n]
	}
	return users
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the input sources and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.ExportDir != "" {
		if o.FollowersPath != "" || o.FollowersJSON != "" || o.FollowingPath != "" || o.FollowingJSON != "" {
			return gferrors.New(gferrors.ErrCodeInvalidInput, "export directory cannot be combined with other sources")
		}
		src, err := gfio.LocateExport(o.ExportDir)
		if err != nil {
			return err
		}
		o.FollowersPath = src.Followers
		o.FollowingPath = src.Following
	}

	if err := exactlyOne("followers", o.FollowersPath, o.FollowersJSON); err != nil {
		return err
	}
	if err := exactlyOne("following", o.FollowingPath, o.FollowingJSON); err != nil {
		return err
	}
	if o.FollowersPath == gfio.StdinPath && o.FollowingPath == gfio.StdinPath {
		return gferrors.New(gferrors.ErrCodeInvalidInput, "only one document can be read from stdin")
	}

	if o.OutDir == "" {
		o.OutDir = config.DefaultOutDir
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

func exactlyOne(document, path, raw string) error {
	switch {
	case path == "" && raw == "":
		return gferrors.New(gferrors.ErrCodeInvalidInput, "%s source is required (file path or raw JSON)", document)
	case path != "" && raw != "":
		return gferrors.New(gferrors.ErrCodeInvalidInput, "%s file path and raw JSON are mutually exclusive", document)
	}
	return nil
}
