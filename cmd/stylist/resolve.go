package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylist/internal/style"
	"github.com/alexisbeaulieu97/stylist/internal/ui/components"
)

type resolveOptions struct {
	propsPath string
	render    string
	compact   bool
}

func (o *resolveOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.propsPath, "props", "p", "", "YAML or JSON props file, or - for stdin (default: no props)")
	cmd.Flags().StringVar(&o.render, "render", "", "Draw this label with the resolved style instead of printing the sheet")
	cmd.Flags().BoolVar(&o.compact, "compact", false, "Print the sheet as single-line JSON")
}

func newButtonCmd(load func() settings) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "button",
		Short: "Resolve the button sheet for a props file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, props, err := prepare[style.ButtonProps](cmd, load(), opts)
			if err != nil {
				return err
			}
			if opts.render != "" {
				return writeLine(cmd, components.NewButton(opts.render).WithProps(props).ViewWithContext(components.NewContext(app.Resolver)))
			}
			return writeSheet(cmd, app.Resolver.Button(props), opts.compact)
		},
	}
	opts.register(cmd)
	return cmd
}

func newTouchableCmd(load func() settings) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "touchable",
		Short: "Resolve the touchable text sheet for a props file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, props, err := prepare[style.TouchableTextProps](cmd, load(), opts)
			if err != nil {
				return err
			}
			sheet, err := app.Resolver.TouchableText(props)
			if err != nil {
				return presetCommandError("touchable", err)
			}
			if opts.render != "" {
				return writeLine(cmd, sheet.Text.Lipgloss().Render(opts.render))
			}
			return writeSheet(cmd, sheet, opts.compact)
		},
	}
	opts.register(cmd)
	return cmd
}

func newTextCmd(load func() settings) *cobra.Command {
	opts := &resolveOptions{}
	var superscript string
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Resolve the text and superscript sheet for a props file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, props, err := prepare[style.TextProps](cmd, load(), opts)
			if err != nil {
				return err
			}
			if opts.render != "" {
				text := components.NewText(opts.render, props.Size).WithProps(props)
				if superscript != "" {
					text = text.WithSuperscript(superscript, props.SuperScriptTextColor)
				}
				out, err := text.Render(components.NewContext(app.Resolver))
				if err != nil {
					return presetCommandError("text", err)
				}
				return writeLine(cmd, out)
			}
			sheet, err := app.Resolver.Text(props)
			if err != nil {
				return presetCommandError("text", err)
			}
			return writeSheet(cmd, sheet, opts.compact)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&superscript, "superscript", "", "Superscript label drawn after --render")
	return cmd
}

func prepare[P any](cmd *cobra.Command, s settings, opts *resolveOptions) (*AppContext, P, error) {
	var props P

	app, err := newAppContext(s, cmd.ErrOrStderr())
	if err != nil {
		return nil, props, err
	}

	props, err = readProps[P](cmd.InOrStdin(), opts.propsPath)
	if err != nil {
		return nil, props, newCommandError(cmd.Name(), "reading props", err, "Props use the camelCase keys documented for each builder, for example backgroundColor or mTpx.")
	}

	app.Logger.Debug("props loaded", map[string]any{"builder": cmd.Name(), "path": opts.propsPath})
	return app, props, nil
}

// readProps decodes props from path. JSON documents parse as YAML.
func readProps[P any](stdin io.Reader, path string) (P, error) {
	data, err := readPropsData(stdin, path)
	if err != nil {
		var props P
		return props, err
	}
	return decodeProps[P](data, path)
}

// readPropsData returns the raw props document at path, reading stdin for "-".
// An empty path yields no data.
func readPropsData(stdin io.Reader, path string) ([]byte, error) {
	switch strings.TrimSpace(path) {
	case "":
		return nil, nil
	case "-":
		return io.ReadAll(stdin)
	default:
		return os.ReadFile(path)
	}
}

func decodeProps[P any](data []byte, path string) (P, error) {
	var props P

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&props); err != nil && !errors.Is(err, io.EOF) {
		return props, fmt.Errorf("decode %s: %w", path, err)
	}
	return props, nil
}

func presetCommandError(operation string, err error) error {
	return newCommandError(operation, "resolving text preset", err, "Run 'stylist presets' to list registered presets.")
}

func writeSheet(cmd *cobra.Command, sheet any, compact bool) error {
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = json.Marshal(sheet)
	} else {
		data, err = json.MarshalIndent(sheet, "", "  ")
	}
	if err != nil {
		return err
	}
	return writeLine(cmd, string(data))
}

func writeLine(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
