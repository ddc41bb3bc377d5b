package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/transfer"
	"github.com/zostay/go-eml/message/walker"
)

const previewLength = 40

func newInspectCmd(ro *rootOptions) *cobra.Command {
	mf := &messageFlags{}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Shows the header, envelope and MIME tree of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, m, err := ro.project(cmd, mf)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := m.Header().WriteTo(out); err != nil {
				return err
			}

			env := m.Envelope()
			fmt.Fprintf(out, "\nenvelope from: %s\n", env.From)
			fmt.Fprintf(out, "envelope to:   %s\n\n", strings.Join(env.To, ", "))

			return describeTree(out, e.Body().Part())
		},
	}

	mf.register(inspectCmd)

	return inspectCmd
}

// describeTree prints one line per part, indented by depth. Leaves show their
// size on the wire and a preview of the decoded content.
func describeTree(w io.Writer, root message.Part) error {
	var pw walker.PartWalker = func(depth, i int, part message.Part) error {
		indent := strings.Repeat("  ", depth)
		h := part.GetHeader()
		mt, err := h.GetMediaType()
		if err != nil {
			mt = "text/plain"
		}

		if mm, ok := part.(*message.Multipart); ok {
			_, err := fmt.Fprintf(w, "%s[%d] %s boundary=%s\n", indent, i, mt, mm.Boundary())
			return err
		}

		encoded := &bytes.Buffer{}
		enc := transfer.ApplyTransferEncoding(h, encoded)
		if _, err := io.Copy(enc, part.GetReader()); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}

		decoded, err := io.ReadAll(transfer.ApplyTransferDecoding(h, bytes.NewReader(encoded.Bytes())))
		if err != nil {
			return err
		}

		te, err := h.GetTransferEncoding()
		if err != nil {
			te = "as-is"
		}

		_, err = fmt.Fprintf(w, "%s[%d] %s %s %d bytes %q\n",
			indent, i, mt, te, encoded.Len(), preview(decoded))
		return err
	}

	return pw.Walk(root)
}

func preview(b []byte) string {
	s := string(b)
	if r := []rune(s); len(r) > previewLength {
		return string(r[:previewLength]) + "..."
	}
	return s
}
