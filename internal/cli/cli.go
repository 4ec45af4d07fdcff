package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordnet/pkg/buildinfo"
	"github.com/matzehuels/wordnet/pkg/config"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/wordnet"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Flags shared by every command
	configPath string
	synsets    string
	hypernyms  string
	verbose    bool

	cfg config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Semantic relatedness over the WordNet noun taxonomy",
		Long: `wordnet loads a WordNet synset/hypernym pair and answers questions about
nouns: whether a word is a noun, how far apart two nouns are, which synset is
their shortest common ancestor, and which noun of a list is the outcast.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordnet/config.toml)")
	flags.StringVar(&c.synsets, "synsets", "", "synsets file (overrides data.synsets)")
	flags.StringVar(&c.hypernyms, "hypernyms", "", "hypernyms file (overrides data.hypernyms)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.nounsCommand())
	root.AddCommand(c.isNounCommand())
	root.AddCommand(c.scaCommand())
	root.AddCommand(c.distanceCommand())
	root.AddCommand(c.outcastCommand())
	root.AddCommand(c.ancestorCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup applies --verbose, loads the config file and applies flag
// overrides before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Override(config.Overrides{Synsets: c.synsets, Hypernyms: c.hypernyms}); err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("config loaded", "synsets", cfg.Data.Synsets, "hypernyms", cfg.Data.Hypernyms, "cache_size", cfg.Engine.CacheSize)
	return nil
}

// =============================================================================
// Lexicon Loading
// =============================================================================

// loadLexicon opens the configured data files behind a spinner.
func (c *CLI) loadLexicon(ctx context.Context) (*wordnet.WordNet, error) {
	if err := c.cfg.RequireData(); err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Loading lexicon...")
	spin.Start()

	wn, err := wordnet.Open(ctx, c.cfg.Data.Synsets, c.cfg.Data.Hypernyms,
		wordnet.WithLogger(logger),
		wordnet.WithCacheSize(c.cfg.Engine.CacheSize),
	)
	spin.Stop()
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + plural(wn.SynsetCount(), "synset") + ", " + plural(wn.NounCount(), "noun"))
	return wn, nil
}

// nounPair validates the two noun arguments of sca, distance and graph.
func nounPair(args []string) (string, string, error) {
	for _, a := range args {
		if err := errs.ValidateNoun(a); err != nil {
			return "", "", err
		}
	}
	return args[0], args[1], nil
}
