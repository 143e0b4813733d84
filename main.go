package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sadopc/cyclr/internal/config"
	"github.com/sadopc/cyclr/internal/cycle"
	"github.com/sadopc/cyclr/internal/store"
	"github.com/sadopc/cyclr/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	v := config.New()

	root := &cobra.Command{
		Use:           "cyclr",
		Short:         "Focus cycle timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cyclr/cyclr.yml)")
	root.PersistentFlags().String("locale", "", "validation and label language: en|pt-BR")
	root.PersistentFlags().Duration("tick", 0, "countdown refresh interval")
	_ = v.BindPFlag(config.KeyLocale, root.PersistentFlags().Lookup("locale"))
	_ = v.BindPFlag(config.KeyTickInterval, root.PersistentFlags().Lookup("tick"))

	root.AddCommand(newRunCmd(v, &configPath))
	return root
}

func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(v, path)
}

// openSession opens the in-memory journal and seeds its settings from cfg.
func openSession(cfg config.Config) (*store.Store, error) {
	s, err := store.NewMemory()
	if err != nil {
		return nil, fmt.Errorf("open session journal: %w", err)
	}
	err = s.SeedSettings(map[string]string{
		store.SettingLocale:         cfg.Locale,
		store.SettingDefaultMinutes: strconv.Itoa(cfg.DefaultMinutes),
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func runTUI(cfg config.Config) error {
	if cfg.LogFile == "" && os.Getenv("CYCLR_DEBUG") != "" {
		cfg.LogFile = "cyclr-debug.log"
	}
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, tui.AppName+" ")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	m := cycle.NewManager(cycle.WithSchema(cycle.NewSchema(cfg.Locale)))
	app := tui.NewApp(s, m, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}
	log.Printf("session ended with %d cycles", len(m.Cycles()))
	return nil
}

func newRunCmd(v *viper.Viper, configPath *string) *cobra.Command {
	var task string
	var minutes int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one cycle in the terminal without the UI; Ctrl-C interrupts it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, *configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("minutes") && cfg.DefaultMinutes > 0 {
				minutes = cfg.DefaultMinutes
			}

			log.SetOutput(cmd.ErrOrStderr())
			log.SetPrefix(tui.AppName + " ")

			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			m := cycle.NewManager(cycle.WithSchema(cycle.NewSchema(cfg.Locale)))
			c, err := m.Create(task, minutes)
			if err != nil {
				var ve *cycle.ValidationError
				if errors.As(err, &ve) {
					for _, f := range ve.Fields {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), f.Message)
					}
				}
				return err
			}
			if err := s.InsertCycle(c); err != nil {
				log.Printf("journal cycle %s: %v", c.ID, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s: %d min\n%s", c.Task, c.MinutesAmount, m.Countdown())
			last := m.Countdown()
			done, ok := cycle.Run(ctx, m, cfg.TickInterval, func(m *cycle.Manager) {
				if now := m.Countdown(); now != last {
					last = now
					_, _ = fmt.Fprintf(out, "\r%s ", now)
				}
			})
			if !ok {
				return nil
			}
			if err := s.InterruptCycle(done.ID, *done.InterruptDate); err != nil {
				log.Printf("journal interrupt %s: %v", done.ID, err)
			}
			return printSummary(out, s, done)
		},
	}
	cmd.Flags().StringVar(&task, "task", "", "task to work on")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "cycle length in minutes (5-60)")
	return cmd
}

func printSummary(w io.Writer, s *store.Store, c cycle.Cycle) error {
	summaries, err := s.GetTaskSummary(time.Now())
	if err != nil {
		return err
	}
	focused := c.Focused(time.Now()).Truncate(time.Second)
	_, _ = fmt.Fprintf(w, "\ninterrupted %q after %s of %d min\n", c.Task, focused, c.MinutesAmount)
	for _, ts := range summaries {
		_, _ = fmt.Fprintf(w, "  %-20s %d cycle(s), %ds focused\n", ts.Task, ts.CycleCount, ts.FocusedSeconds)
	}
	return nil
}
