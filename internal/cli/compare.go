package cli

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
	gfio "github.com/OopsException/ghost-followers/pkg/io"
	"github.com/OopsException/ghost-followers/pkg/pipeline"
)

// Summary output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// compareOptions holds the flags of the compare command.
type compareOptions struct {
	followers     string
	followersJSON string
	following     string
	followingJSON string
	exportDir     string
	write         bool
	outDir        string
	preview       int
	format        string
	interactive   bool
}

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	opts := compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "List accounts you follow that do not follow you back",
		Long: `Compare the followers and following documents of an Instagram data export.

Each document can be given as a file path ("-" reads stdin) or as raw JSON.
Alternatively, --export-dir points at an unpacked export and both files are
located automatically.`,
		Example: `  ghost-followers compare --followers followers_1.json --following following.json
  ghost-followers compare --export-dir ~/Downloads/instagram-export --write
  cat following.json | ghost-followers compare --followers followers_1.json --following -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfigDefaults(cmd, &opts)
			return c.runCompare(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.followers, "followers", "", "path to the followers document (\"-\" for stdin)")
	f.StringVar(&opts.followersJSON, "followers-json", "", "followers document as raw JSON")
	f.StringVar(&opts.following, "following", "", "path to the following document (\"-\" for stdin)")
	f.StringVar(&opts.followingJSON, "following-json", "", "following document as raw JSON")
	f.StringVar(&opts.exportDir, "export-dir", "", "unpacked Instagram export directory")
	f.BoolVar(&opts.write, "write", false, "write the result to the output directory")
	f.StringVar(&opts.outDir, "out-dir", "", "output directory for --write (default \"output\")")
	f.IntVar(&opts.preview, "preview", 0, "number of usernames to print (default 30)")
	f.StringVar(&opts.format, "format", formatText, "summary format: text or json")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "browse the result in an interactive list")

	cmd.MarkFlagsMutuallyExclusive("followers", "followers-json")
	cmd.MarkFlagsMutuallyExclusive("following", "following-json")
	cmd.MarkFlagsMutuallyExclusive("export-dir", "followers")
	cmd.MarkFlagsMutuallyExclusive("export-dir", "followers-json")
	cmd.MarkFlagsMutuallyExclusive("export-dir", "following")
	cmd.MarkFlagsMutuallyExclusive("export-dir", "following-json")
	cmd.MarkFlagsMutuallyExclusive("interactive", "format")

	return cmd
}

// applyConfigDefaults fills options the user did not set on the command line.
func (c *CLI) applyConfigDefaults(cmd *cobra.Command, opts *compareOptions) {
	f := cmd.Flags()
	if !f.Changed("write") {
		opts.write = c.Config.Write
	}
	if !f.Changed("out-dir") {
		opts.outDir = c.Config.OutDir
	}
	if !f.Changed("preview") {
		opts.preview = c.Config.Preview
	}
}

func (opts compareOptions) validate() error {
	if opts.preview < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidInput, "preview must be >= 0, got %d", opts.preview)
	}
	if opts.format != formatText && opts.format != formatJSON {
		return gferrors.New(gferrors.ErrCodeInvalidInput, "unknown format %q (want %s or %s)", opts.format, formatText, formatJSON)
	}
	for _, p := range []string{opts.followers, opts.following, opts.exportDir} {
		if p == "" {
			continue
		}
		if err := gferrors.ValidatePath(p); err != nil {
			return err
		}
	}
	if opts.interactive && (opts.followers == gfio.StdinPath || opts.following == gfio.StdinPath) {
		return gferrors.New(gferrors.ErrCodeInvalidInput, "--interactive cannot be combined with a document read from stdin")
	}
	if opts.write {
		if err := gferrors.ValidatePath(opts.outDir); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) runCompare(cmd *cobra.Command, opts compareOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		FollowersPath: opts.followers,
		FollowersJSON: opts.followersJSON,
		FollowingPath: opts.following,
		FollowingJSON: opts.followingJSON,
		ExportDir:     opts.exportDir,
		Write:         opts.write,
		OutDir:        opts.outDir,
		Stdin:         cmd.InOrStdin(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compared %d accounts", result.Stats.Following))

	w := cmd.OutOrStdout()
	switch {
	case opts.interactive:
		p := tea.NewProgram(newResultModel(result),
			tea.WithContext(ctx),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(w),
		)
		_, err := p.Run()
		return err
	case opts.format == formatJSON:
		return writeSummaryJSON(w, result)
	default:
		printSummary(w, result, opts.preview)
		return nil
	}
}

// =============================================================================
// Summary Output
// =============================================================================

// printSummary prints the counts, a preview of the result and any written files.
func printSummary(w io.Writer, result *pipeline.Result, preview int) {
	s := result.Stats
	printCount(w, "Followers:", s.Followers)
	printCount(w, "Following:", s.Following)
	printCount(w, "Not following back:", s.NotFollowingBack)

	printNewline(w)
	if s.Followers == 0 && s.Following > 0 {
		printWarning(w, "No followers found; check that the followers document is the right file")
	}
	if s.NotFollowingBack == 0 {
		printSuccess(w, "Everyone you follow follows you back")
	} else {
		printInfo(w, "Preview (up to %d):", preview)
		for _, u := range result.Preview(preview) {
			printUser(w, u)
		}
		if rest := s.NotFollowingBack - preview; preview > 0 && rest > 0 {
			fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf("... and %d more", rest)))
		}
	}

	if result.Files.JSON != "" {
		printNewline(w)
		printSuccess(w, "Wrote results")
		printFile(w, result.Files.JSON)
		printFile(w, result.Files.Text)
	}
}

// summaryJSON is the --format json document.
type summaryJSON struct {
	FollowersCount        int      `json:"followers_count"`
	FollowingCount        int      `json:"following_count"`
	NotFollowingBackCount int      `json:"not_following_back_count"`
	NotFollowingBack      []string `json:"not_following_back"`
	Files                 []string `json:"files,omitempty"`
}

func writeSummaryJSON(w io.Writer, result *pipeline.Result) error {
	out := summaryJSON{
		FollowersCount:        result.Stats.Followers,
		FollowingCount:        result.Stats.Following,
		NotFollowingBackCount: result.Stats.NotFollowingBack,
		NotFollowingBack:      result.Comparison.NotFollowingBack(),
	}
	if result.Files.JSON != "" {
		out.Files = []string{result.Files.JSON, result.Files.Text}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
