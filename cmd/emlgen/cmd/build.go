package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newBuildCmd(ro *rootOptions) *cobra.Command {
	mf := &messageFlags{}
	var output string

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Writes a message as an .eml file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := ro.project(cmd, mf)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			n, err := m.WriteTo(w)
			if err != nil {
				return err
			}

			env := m.Envelope()
			ro.logger.Info("message written",
				"output", output,
				"bytes", n,
				"message_id", m.MessageID(),
				"from", env.From,
				"recipients", len(env.To),
			)

			return nil
		},
	}

	mf.register(buildCmd)
	buildCmd.Flags().StringVarP(&output, "output", "o", "", "file to write, defaults to standard output")

	return buildCmd
}
