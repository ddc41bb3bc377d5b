package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/message"
)

func newMessageIDCmd(ro *rootOptions) *cobra.Command {
	var count int

	messageIDCmd := &cobra.Command{
		Use:   "message-id domain",
		Short: "Generates random Message-IDs for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.logger.Debug("generating message ids", "domain", args[0], "count", count)
			for i := 0; i < count; i++ {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), message.GenerateMessageID(args[0])); err != nil {
					return err
				}
			}
			return nil
		},
	}

	messageIDCmd.Flags().IntVarP(&count, "count", "n", 1, "number of ids to generate")

	return messageIDCmd
}
