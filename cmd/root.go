package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrybrwn/config"
	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/roster/cmd/internal"
	"github.com/harrybrwn/roster/cmd/internal/manager"
	"github.com/harrybrwn/roster/cmd/internal/opts"
	"github.com/harrybrwn/roster/pkg/term"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version string

// Logger is the log file for the cmd package
var Logger = &lumberjack.Logger{
	Filename:   filepath.Join(os.TempDir(), "roster.log"),
	MaxSize:    25,  // megabytes
	MaxBackups: 10,  // number of spare files
	MaxAge:     365, // days
	Compress:   false,
}

var logger = logrus.New()

// Config is the layout of the config file.
type Config struct {
	NoColor  bool   `yaml:"nocolor"`
	Format   string `yaml:"format"`
	LogFile  string `yaml:"logfile"`
	LogLevel string `yaml:"loglevel"`
}

var conf = &Config{
	Format:   string(manager.FormatDebug),
	LogLevel: "info",
}

// Stop will print to stderr and exit with the error's
// exit code or 1.
func Stop(err error) {
	logger.WithError(err).Error("stopping")
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var e *internal.Error
	if errors.As(err, &e) {
		os.Exit(e.Code)
	}
	os.Exit(1)
}

// Execute will execute the root comand on the cli
func Execute() (err error) {
	config.SetFilename("config.yml")
	config.SetType("yaml")
	config.AddPath("$ROSTER_CONFIG")
	config.AddDefaultDirs("roster")
	config.SetConfig(conf)

	err = config.ReadConfigFile()
	switch err {
	case nil, config.ErrNoConfigDir, config.ErrNoConfigFile:
		break
	default:
		return &internal.Error{Msg: errors.Wrap(err, "could not read config").Error(), Code: 2}
	}
	if err = setupLogging(logger, conf, config.FileUsed()); err != nil {
		return err
	}
	if f := config.FileUsed(); f != "" {
		logger.WithField("file", f).Debug("using config file")
	}

	root := newRootCmd(conf, logger)
	root.SetOut(term.Output)
	return root.Execute()
}

func setupLogging(l *logrus.Logger, c *Config, configfile string) error {
	if configfile != "" {
		Logger.Filename = filepath.Join(filepath.Dir(configfile), "logs", "roster.log")
	}
	if c.LogFile != "" {
		Logger.Filename = os.ExpandEnv(c.LogFile)
	}
	level := logrus.InfoLevel
	if c.LogLevel != "" {
		var err error
		if level, err = logrus.ParseLevel(c.LogLevel); err != nil {
			return &internal.Error{Msg: err.Error(), Code: 2}
		}
	}
	l.Out = Logger
	l.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	l.SetLevel(level)
	return nil
}

func newRootCmd(c *Config, l logrus.FieldLogger) *cobra.Command {
	globals := opts.Global{NoColor: c.NoColor, Format: c.Format}
	root := &cobra.Command{
		Use:           "roster",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Short:         "Manage a roster of students from the terminal.",
		Long: `Roster is an interactive manager for a class of students.

Students are kept in memory only, so everything is
forgotten when the program exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := manager.ParseFormat(globals.Format)
			if err != nil {
				return &internal.Error{Msg: err.Error(), Code: 2}
			}
			session := manager.New(
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				manager.WithLogger(l),
				manager.WithFormat(format),
				manager.WithColor(!globals.NoColor),
			)
			l.WithField("format", format).Debug("session started")
			session.Run()
			l.WithField("students", session.Roster().Len()).Debug("session ended")
			return nil
		},
	}
	globals.AddToFlagSet(root.PersistentFlags())
	root.SetUsageTemplate(commandTemplate)
	root.AddCommand(newCompletionCmd())
	return root
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion",
		Short: "Print a completion script to stdout.",
		Long: `Use the completion command to generate a script for shell
completion. Note: for zsh you will need to use the command
'compdef _roster roster' after you source the generated script.`,
		Example:   "$ source <(roster completion zsh)",
		ValidArgs: []string{"zsh", "bash", "ps", "powershell", "fish"},
		Aliases:   []string{"comp"},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return errors.New("no shell type given")
			}
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "ps", "powershell":
				return root.GenPowerShellCompletion(out)
			case "bash":
				return root.GenBashCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, false)
			}
			return errs.New("unknown shell type")
		},
	}
}

var commandTemplate = `Usage:
{{if .Runnable}}
	{{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
	{{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
	{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:

{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:

{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`
