package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylist/internal/style"
	"github.com/alexisbeaulieu97/stylist/pkg/diff"
)

type diffOptions struct {
	before    string
	after     string
	afterMode string
}

func newDiffCmd(load func() settings) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <button|touchable|text>",
		Short: "Show how a props or mode change alters a resolved sheet",
		Long: `Resolve the same builder twice and print a unified diff of the two sheets.

The after side reads --after (default: the --before props) and resolves in
--after-mode (default: the current mode).`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"button", "touchable", "text"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, load(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.before, "before", "", "Props file for the before side")
	cmd.Flags().StringVar(&opts.after, "after", "", "Props file for the after side")
	cmd.Flags().StringVar(&opts.afterMode, "after-mode", "", "Color mode for the after side")

	return cmd
}

func runDiff(cmd *cobra.Command, s settings, builder string, opts *diffOptions) error {
	if opts.after == "" && opts.afterMode == "" {
		return newCommandError("diff", "choosing what to compare", errors.New("nothing differs between the two sides"), "Pass --after, --after-mode or both.")
	}

	beforeApp, err := newAppContext(s, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	afterSettings := s
	if opts.afterMode != "" {
		afterSettings.Mode = opts.afterMode
	}
	afterApp, err := newAppContext(afterSettings, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	afterPath := opts.after
	if afterPath == "" {
		afterPath = opts.before
	}

	// stdin can only be read once, so both sides share the document when the paths match.
	beforeData, err := readPropsData(cmd.InOrStdin(), opts.before)
	if err != nil {
		return diffPropsError(err)
	}
	afterData := beforeData
	if afterPath != opts.before {
		if afterData, err = readPropsData(cmd.InOrStdin(), afterPath); err != nil {
			return diffPropsError(err)
		}
	}

	beforeSheet, err := resolveSheet(beforeApp.Resolver, builder, beforeData, opts.before)
	if err != nil {
		return err
	}
	afterSheet, err := resolveSheet(afterApp.Resolver, builder, afterData, afterPath)
	if err != nil {
		return err
	}

	out, err := diff.Sheets(beforeSheet, afterSheet, label(opts.before, s.Mode), label(afterPath, afterSettings.Mode))
	if err != nil {
		return err
	}
	if out == "" {
		return writeLine(cmd, "sheets are identical")
	}

	if beforeApp.Logger.Enabled("debug") {
		added, removed := diff.Changed(out)
		beforeApp.Logger.Debug("sheets differ", map[string]any{"builder": builder, "added": added, "removed": removed})
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// resolveSheet decodes props for builder from data and resolves them.
func resolveSheet(r *style.Resolver, builder string, data []byte, path string) (any, error) {
	switch builder {
	case "button":
		props, err := decodeProps[style.ButtonProps](data, path)
		if err != nil {
			return nil, diffPropsError(err)
		}
		return r.Button(props), nil
	case "touchable":
		props, err := decodeProps[style.TouchableTextProps](data, path)
		if err != nil {
			return nil, diffPropsError(err)
		}
		sheet, err := r.TouchableText(props)
		if err != nil {
			return nil, presetCommandError("diff", err)
		}
		return sheet, nil
	case "text":
		props, err := decodeProps[style.TextProps](data, path)
		if err != nil {
			return nil, diffPropsError(err)
		}
		sheet, err := r.Text(props)
		if err != nil {
			return nil, presetCommandError("diff", err)
		}
		return sheet, nil
	default:
		return nil, newCommandError("diff", "choosing a builder", fmt.Errorf("unknown builder %q", builder), "Use button, touchable or text.")
	}
}

func diffPropsError(err error) error {
	return newCommandError("diff", "reading props", err, "Props use the camelCase keys documented for each builder.")
}

func label(path, mode string) string {
	if path == "" {
		path = "(no props)"
	}
	return fmt.Sprintf("%s [%s]", path, modeLabel(mode))
}
