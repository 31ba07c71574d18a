package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylist/internal/tui"
)

var previewRunner = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func newPreviewCmd(load func() settings) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview resolved styles interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(load(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app.Logger.Info("launching preview", map[string]any{"label": label})
			if err := previewRunner(tui.NewModel(app.Resolver, label)); err != nil {
				app.Logger.Error(err, "preview failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "Preview", "Label drawn in every sample")
	return cmd
}
