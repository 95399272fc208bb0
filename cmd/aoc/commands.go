package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/aoc-2021/internal/config"
	"github.com/kingrea/aoc-2021/internal/logging"
	"github.com/kingrea/aoc-2021/internal/tui"
)

// session carries state shared by subcommands for a single invocation.
type session struct {
	root    string
	verbose bool
	logFile bool

	cfg    *config.Config
	logger *logging.Logger
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Read Advent of Code puzzle inputs from the enclosing repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// help and completion work outside a repository
			if cmd.Name() == "help" || (cmd.HasParent() && cmd.Parent().Name() == "completion") {
				s.logger = logging.Nop()
				return nil
			}
			return s.open()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.PersistentFlags().StringVar(&s.root, "root", "", "repository root (skips .git discovery)")
	root.PersistentFlags().BoolVar(&s.logFile, "log", false, "append lookups to .aoc/logs/aoc.log")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "include debug entries in the log")

	root.AddCommand(
		s.inputCmd(),
		s.pathCmd(),
		s.listCmd(),
		s.browseCmd(),
		s.initCmd(),
	)
	return root
}

func (s *session) open() error {
	var err error
	if strings.TrimSpace(s.root) != "" {
		s.cfg, err = config.Load(s.root)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		s.cfg, err = config.Resolve(cwd)
	}
	if err != nil {
		return err
	}
	s.logger = logging.Nop()
	if s.logFile {
		s.logger, err = logging.New(s.cfg.LogsDir(), s.verbose)
		if err != nil {
			return err
		}
	}
	s.logger.Debug("config loaded",
		zap.String("root", s.cfg.Root),
		zap.String("inputs_dir", s.cfg.InputsDir()),
		zap.Int("year", s.cfg.Year()),
	)
	return nil
}

// close flushes the log. cobra skips post-run hooks when RunE fails, so run
// calls this after Execute instead.
func (s *session) close() error {
	if s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

func dayArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{err: fmt.Errorf("%s takes exactly one day number", cmd.Name())}
	}
	if _, err := parseDay(args[0]); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return &usageError{err: fmt.Errorf("%s takes no arguments", cmd.Name())}
	}
	return nil
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: must be an integer", arg)
	}
	return day, nil
}

func (s *session) inputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "input <day>",
		Short: "Print the raw puzzle input for a day",
		Args:  dayArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, _ := parseDay(args[0])
			loader := s.cfg.Loader()
			text, err := loader.Text(day)
			if err != nil {
				s.logger.Warn("input lookup failed", zap.Int("day", day), zap.Error(err))
				return err
			}
			s.logger.Info("input loaded", zap.Int("day", day), zap.Int("bytes", len(text)))
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func (s *session) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <day>",
		Short: "Print where the input file for a day is expected",
		Args:  dayArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, _ := parseDay(args[0])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s.cfg.Loader().Path(day))
			return err
		},
	}
}

func (s *session) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have an input file",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := s.cfg.Loader().Available()
			if err != nil {
				return err
			}
			s.logger.Debug("inputs listed", zap.Ints("days", days))
			out := cmd.OutOrStdout()
			for _, day := range days {
				if _, err := fmt.Fprintln(out, day); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (s *session) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse puzzle inputs in the terminal",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := tui.NewApp(s.cfg.Loader())
			if err != nil {
				return err
			}
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}
}

func (s *session) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default aoc.yaml at the repository root",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.cfg.WriteDefault(); err != nil {
				return err
			}
			if err := os.MkdirAll(s.cfg.InputsDir(), 0o755); err != nil {
				return fmt.Errorf("create inputs dir: %w", err)
			}
			s.logger.Info("project initialized", zap.String("config", s.cfg.ProjectConfigPath()))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s.cfg.ProjectConfigPath())
			return err
		},
	}
}
