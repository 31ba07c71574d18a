package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

func newPresetsCmd(load func() settings) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List registered text presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(load(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			registry := app.Resolver.Presets()

			if jsonOutput {
				out := make(map[string]style.Fragment, registry.Len())
				for _, key := range registry.Keys() {
					out[key], _ = registry.Get(key)
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				return writeLine(cmd, string(data))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tFAMILY\tSIZE\tWEIGHT\tLINE HEIGHT")
			for _, key := range registry.Keys() {
				fragment, _ := registry.Get(key)
				fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%g\n", key, fragment.FontFamily, fragment.FontSize, fragment.FontWeight, fragment.LineHeight)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output presets as JSON")
	return cmd
}
