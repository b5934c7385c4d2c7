// Command recurlyctl looks up and creates accounts from the command line.
//
// Credentials come from flags, RECURLY_* environment variables or a YAML
// config file:
//
//	export RECURLY_SUBDOMAIN=acme RECURLY_API_KEY=...
//	recurlyctl accounts get customer-42
//	recurlyctl accounts create --generate-code --email jane@example.com
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	recurly "github.com/recurly/recurly-client-go"
)

// Config holds the process streams the commands read from and write to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

const commandTimeout = 2 * time.Minute

// run executes the command line in args (args[0] is the program name).
func run(args []string, cfg Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	root := newRootCmd(cfg)
	if len(args) > 1 {
		root.SetArgs(args[1:])
	} else {
		root.SetArgs([]string{})
	}
	return root.ExecuteContext(ctx)
}

// app carries the settings shared by every subcommand.
type app struct {
	cfg    Config
	v      *viper.Viper
	logger *logrus.Logger
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, v: viper.New(), logger: logrus.New()}

	cmd := &cobra.Command{
		Use:           "recurlyctl",
		Short:         "Command line client for the Recurly API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file.")
	flags.String("subdomain", "", "Site subdomain, e.g. acme for acme.recurly.com.")
	flags.String("api-key", "", "Private API key of the site.")
	flags.String("base-url", "", "Override the API root, e.g. for a local mock.")
	flags.Duration("timeout", 0, "Deadline for read requests. Zero keeps the client default.")
	flags.String("log-level", "warn", `Log level: "trace", "debug", "info", "warn" or "error".`)
	flags.String("log-format", "text", `Log format: "text" or "json".`)
	flags.StringP("output", "o", "yaml", `Output format: "yaml" or "json".`)

	a.v.SetEnvPrefix("RECURLY")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand((&accountsCmd{app: a}).Command())
	cmd.AddCommand(versionCommand())

	return cmd
}

// load reads the optional config file and sets up logging.
func (a *app) load() error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.logger.SetOutput(a.cfg.Stderr)
	a.logger.SetLevel(level)

	switch format := a.v.GetString("log-format"); format {
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		a.logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

// client builds an API client from the resolved settings.
func (a *app) client() (*recurly.Client, error) {
	opts := []recurly.Option{recurly.WithLogger(a.logger)}
	if baseURL := a.v.GetString("base-url"); baseURL != "" {
		opts = append(opts, recurly.WithBaseURL(baseURL))
	}
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, recurly.WithTimeout(timeout))
	}

	client, err := recurly.New(a.v.GetString("subdomain"), a.v.GetString("api-key"), opts...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client library version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), recurly.Version)
		},
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
