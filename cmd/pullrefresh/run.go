package main

import (
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/config"
	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/tui"
	rerrors "github.com/go-drift/pullrefresh/pkg/errors"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Pull the configured content with the mouse in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			// The alternate screen owns stdout and stderr.
			if logFile != "" {
				f, err := tea.LogToFile(logFile, "pullrefresh")
				if err != nil {
					return err
				}
				defer f.Close()
				rerrors.SetHandler(&rerrors.LogHandler{Verbose: flags.verbose, Out: f})
				rerrors.SetTraceOutput(f)
			} else {
				rerrors.SetTrace(false)
				rerrors.SetHandler(&rerrors.LogHandler{Verbose: flags.verbose, Out: io.Discard})
			}

			opts := tui.Options{ConfigPath: path}
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				cmd.PrintErrf("Warning: could not start config watcher: %v\n", err)
			} else {
				defer watcher.Close()
				if err := watcher.Add(filepath.Dir(path)); err != nil {
					cmd.PrintErrf("Warning: could not watch %s: %v\n", filepath.Dir(path), err)
				} else {
					opts.Watcher = watcher
				}
			}

			m, err := tui.New(cfg, opts)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write errors and traces to this file while the UI runs")
	return cmd
}
