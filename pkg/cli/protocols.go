package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/getgsq/gsq/pkg/protocol"
)

// ProtocolOutput represents one protocol in JSON output.
type ProtocolOutput struct {
	Name             string `json:"name"`
	PortOffset       int    `json:"portOffset"`
	JoinLinkTemplate string `json:"joinLinkTemplate,omitempty"`
}

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List registered query protocols",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProtocols(cmd.OutOrStdout(), jsonOutput)
	},
}

func runProtocols(w io.Writer, asJSON bool) error {
	var rows []ProtocolOutput
	for _, name := range protocol.Names() {
		h, err := protocol.New(name, nil)
		if err != nil {
			return err
		}
		rows = append(rows, ProtocolOutput{
			Name:             h.Name(),
			PortOffset:       h.PortOffset(),
			JoinLinkTemplate: h.JoinLinkTemplate(),
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPORT OFFSET\tJOIN LINK")
	for _, row := range rows {
		link := row.JoinLinkTemplate
		if link == "" {
			link = "-"
		}
		fmt.Fprintf(tw, "%s\t%+d\t%s\n", row.Name, row.PortOffset, link)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(protocolsCmd)
}
