package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInteractiveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter interactive mode",
		Long: `Enter interactive mode for continuous weather queries.
Type 'exit' or 'quit' to leave. Command history is supported (up/down arrow keys).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(app, cmd)
		},
	}
}

func runInteractive(app *App, cmd *cobra.Command) error {
	app.Renderer.Info("Entering interactive mode. Type 'exit' or 'quit' to leave.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          app.Renderer.Prompt("atmos> "),
		HistoryFile:     app.Config.HistoryPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.Wrap(err, "failed to start interactive mode")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			app.Renderer.Warn("Operation cancelled.")
			continue
		}
		if err == io.EOF {
			app.Renderer.Info("Exiting interactive mode.")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if lowered := strings.ToLower(line); lowered == "exit" || lowered == "quit" {
			app.Renderer.Info("Exiting interactive mode.")
			return nil
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			app.Renderer.Error(fmt.Sprintf("An error occurred in interactive mode: %v", err))
			continue
		}

		// A fresh command tree per line keeps flag state from leaking
		// between inputs.
		sub := NewRootCommand(app)
		sub.SetArgs(args)
		if err := sub.ExecuteContext(cmd.Context()); err != nil {
			app.Renderer.Error(err.Error())
		}
	}
}
