// Package cli implements the floorplan command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/tools"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "floorplan"

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

	// Out receives documents and reports; Err receives status lines.
	Out io.Writer
	Err io.Writer

	// In is read when a document path is "-".
	In io.Reader

	cfg        *config.Config
	configPath string
	verbose    bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
		In:     os.Stdin,
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
		Short: "Floorplan turns absolute room coordinates into relative layouts",
		Long: `Floorplan reads floorplan documents, infers how rooms sit next to each
other, and rewrites coordinates as relative positions ("right-of Kitchen").
Every edit is a minimal text change: comments and formatting survive.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: user config, then ./"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.roomsCommand())
	root.AddCommand(c.relationsCommand())
	root.AddCommand(c.relativeCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, sets the log level and registers logging hooks.
func (c *CLI) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = LogInfo
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	for _, src := range cfg.Sources {
		c.Logger.Debug("loaded config", "path", src)
	}
	for _, key := range cfg.Unknown {
		c.Logger.Warn("unknown config key", "key", key)
	}

	hooks := &logHooks{logger: c.Logger}
	observability.SetEditHooks(hooks)
	observability.SetConvertHooks(hooks)
	return nil
}

// settings returns the loaded config, or defaults when setup has not run.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// toolkit returns a toolkit configured from the loaded config.
func (c *CLI) toolkit() *tools.Toolkit {
	return tools.New(c.settings(), c.Logger)
}

// =============================================================================
// Document IO
// =============================================================================

// readSource reads a document; "-" reads standard input.
func (c *CLI) readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(c.In)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// readDocument reads and parses a document.
func (c *CLI) readDocument(path string) (string, *dsl.Document, error) {
	src, err := c.readSource(path)
	if err != nil {
		return "", nil, err
	}
	doc, err := dsl.Parse(src)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}
	return src, doc, nil
}

// output controls where rewritten documents go.
type output struct {
	write bool   // overwrite the input file
	path  string // write to this file instead of stdout
}

func (o *output) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.write, "write", "w", false, "write the result back to the input file")
	cmd.Flags().StringVarP(&o.path, "output", "o", "", "write the result to this file")
}

// emit writes text to the chosen destination.
func (c *CLI) emit(o output, input, text string) error {
	target := o.path
	if o.write {
		if input == "-" {
			return errors.New(errors.ErrCodeInvalidInput, "--write cannot be used with standard input")
		}
		target = input
	}
	if target == "" {
		_, err := io.WriteString(c.Out, text)
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(target, []byte(text), mode); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	c.printFile(target)
	return nil
}

// report prints the messages of a toolkit result and emits its text.
// It fails when nothing was applied.
func (c *CLI) report(res *tools.Result, o output, input string) error {
	for _, msg := range res.Errors {
		c.printWarning("%s", msg)
	}
	if len(res.Unresolved) > 0 {
		c.printDetail("unresolved: %s", strings.Join(res.Unresolved, ", "))
	}
	if !res.Applied {
		return errors.New(errors.ErrCodeNotApplicable, "no changes applied")
	}
	return c.emit(o, input, res.Text)
}

// =============================================================================
// Argument Helpers
// =============================================================================

func parseNumber(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", what, s)
	}
	return v, nil
}

// parseDims parses "W x H", "WxH" or "W,H".
func parseDims(s string) (dsl.Size, error) {
	sep := "x"
	if strings.Contains(s, ",") {
		sep = ","
	}
	w, h, ok := strings.Cut(strings.ToLower(s), sep)
	if !ok {
		return dsl.Size{}, errors.New(errors.ErrCodeInvalidInput, "size %q: want WIDTHxHEIGHT", s)
	}
	var size dsl.Size
	var err error
	if size.Width, err = parseNumber("width", w); err != nil {
		return size, err
	}
	if size.Height, err = parseNumber("height", h); err != nil {
		return size, err
	}
	if err := errors.ValidateDimension("width", size.Width); err != nil {
		return size, err
	}
	return size, errors.ValidateDimension("height", size.Height)
}

// parseWalls parses "side=type" pairs, each argument optionally holding
// several comma-separated pairs.
func parseWalls(args []string) (map[string]string, error) {
	walls := make(map[string]string)
	for _, arg := range args {
		for _, pair := range strings.Split(arg, ",") {
			if pair = strings.TrimSpace(pair); pair == "" {
				continue
			}
			side, typ, ok := strings.Cut(pair, "=")
			if !ok {
				side, typ, ok = strings.Cut(pair, ":")
			}
			side, typ = strings.TrimSpace(side), strings.TrimSpace(typ)
			if !ok || !slices.Contains(dsl.WallSides, side) || !slices.Contains(dsl.WallTypes, typ) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "wall %q: want side=type with side in %s and type in %s",
					pair, strings.Join(dsl.WallSides, "/"), strings.Join(dsl.WallTypes, "/"))
			}
			walls[side] = typ
		}
	}
	return walls, nil
}

