package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/hpkotak/clx/internal/config"
	"github.com/hpkotak/clx/internal/executor"
	"github.com/hpkotak/clx/internal/logging"
	"github.com/hpkotak/clx/internal/platform"
	"github.com/hpkotak/clx/internal/prompt"
	"github.com/hpkotak/clx/internal/provider"
	"github.com/hpkotak/clx/internal/render"
	"github.com/hpkotak/clx/internal/safety"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const defaultTimeout = 30 * time.Second

var (
	providerFlag string
	modelFlag    string
	configFlag   string
	timeoutFlag  string
	copyFlag     bool
	runFlag      bool
	debugFlag    bool
)

// generator is the part of provider.Client the translate flow needs.
type generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Package-level function variables for testability.
// Tests override these to avoid real network, terminal and shell access.
var (
	newClient = func(cfg provider.BuildConfig) (generator, error) {
		c, err := provider.NewFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	hostInfo         = platform.Host
	runCommand       = executor.Run
	copyToClipboard  = clipboard.WriteAll
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	askQuery         = func() (string, error) {
		var q string
		err := survey.AskOne(&survey.Input{
			Message: "What command do you need?",
			Help:    "e.g., show disk usage of current directory",
		}, &q)
		return q, err
	}
	ioIn  io.Reader = os.Stdin
	ioOut io.Writer = os.Stdout
	ioErr io.Writer = os.Stderr
)

var errNoQuery = errors.New("no query provided")

var rootCmd = &cobra.Command{
	Use:   "clx [natural language query]",
	Short: "AI-powered CLI command generator",
	Long: `clx translates a natural language request into a shell command
for your operating system and shell.

Examples:
  clx compress this folder as tar.gz
  clx -p ollama find all files larger than 100MB
  git status | clx explain how to undo the last commit`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runTranslate,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&providerFlag, "provider", "p", "", "provider for this query ("+strings.Join(provider.IDs(), ", ")+")")
	flags.StringVarP(&modelFlag, "model", "m", "", "override model for this query")
	flags.StringVarP(&configFlag, "config", "c", "", "path to config file (default "+config.Path()+")")
	flags.BoolVar(&debugFlag, "debug", false, "log diagnostics to stderr")

	rootCmd.Flags().StringVarP(&timeoutFlag, "timeout", "t", "", "request timeout, e.g. 30 or 45s; 0 disables (default 30s)")
	rootCmd.Flags().BoolVar(&copyFlag, "copy", false, "copy the generated command to the clipboard")
	rootCmd.Flags().BoolVar(&runFlag, "run", false, "offer to run the generated command")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config selected by --config, falling back to
// defaults when the file does not exist, then applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.Merge(strings.ToLower(providerFlag), modelFlag)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	return config.Path()
}

func runTranslate(cmd *cobra.Command, args []string) error {
	log := logging.New(debugFlag)
	defer func() { _ = log.Sync() }()

	timeout, err := parseTimeout(timeoutFlag)
	if err != nil {
		return err
	}

	query, err := readQuery(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(provider.BuildConfig{
		Name:   cfg.Provider,
		Model:  cfg.EffectiveModel(),
		APIKey: cfg.APIKey,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	p := prompt.Build(query, hostInfo())
	raw, err := client.Generate(ctx, p.System, p.User)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("request timed out after %s: %w", timeout, err)
		}
		return err
	}

	parsed, ok := prompt.Parse(raw)
	log.Debug("parsed reply", zap.Bool("structured", ok), zap.Int("bytes", len(raw)))
	if !ok {
		render.Fallback(ioOut, raw)
		if copyFlag || runFlag {
			render.Info(ioErr, "Reply was not in the expected format; --copy and --run were skipped.")
		}
		return nil
	}

	render.Result(ioOut, parsed)

	if copyFlag {
		if err := copyToClipboard(strings.Join(parsed.Lines(), "\n")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		render.Info(ioErr, "Copied to clipboard.")
	}

	if runFlag {
		return confirmAndRun(parsed)
	}
	return nil
}

func confirmAndRun(parsed prompt.ParsedCommand) error {
	finding := safety.CheckAll(parsed.Lines())

	var confirmed bool
	if finding.Level == safety.Destructive {
		if parsed.Warning == "" {
			render.Warning(ioOut, fmt.Sprintf("this command %s.", finding.Reason))
		}
		_, _ = fmt.Fprintln(ioOut)
		confirmed = executor.Confirm("Are you sure?", false, ioIn, ioOut)
	} else {
		_, _ = fmt.Fprintln(ioOut)
		confirmed = executor.Confirm("Run this?", true, ioIn, ioOut)
	}

	if !confirmed {
		_, _ = fmt.Fprintln(ioOut, "Cancelled.")
		return nil
	}

	_, _ = fmt.Fprintln(ioOut)
	return runCommand(context.Background(), parsed.Command, executor.Streams{In: ioIn, Out: ioOut, Err: ioErr})
}

// readQuery joins args and appends piped stdin. With neither, it prompts
// when a user is at the terminal.
func readQuery(args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))

	if !stdinIsTerminal() {
		data, err := io.ReadAll(ioIn)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		if piped := strings.TrimSpace(string(data)); piped != "" {
			if query == "" {
				query = piped
			} else {
				query = query + " " + piped
			}
		}
	}

	if query != "" {
		return query, nil
	}

	if !stdoutIsTerminal() {
		return "", errNoQuery
	}
	answer, err := askQuery()
	if err != nil {
		return "", fmt.Errorf("reading query: %w", err)
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return "", errNoQuery
	}
	return answer, nil
}

// parseTimeout accepts a bare number of seconds or a Go duration.
// Empty means the default; zero disables the deadline.
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultTimeout, nil
	}

	var d time.Duration
	if n, err := strconv.Atoi(s); err == nil {
		d = time.Duration(n) * time.Second
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: want seconds (30) or a duration (30s)", s)
		}
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", s)
	}
	return d, nil
}
