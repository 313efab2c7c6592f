package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/getgsq/gsq/pkg/config"
	"github.com/getgsq/gsq/pkg/endpoint"
)

var checkTimeout time.Duration

// CheckOutput represents one checked server in JSON output.
type CheckOutput struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"type"`
	Host      string `json:"host"`
	IP        string `json:"ip,omitempty"`
	PortQuery int    `json:"queryPort,omitempty"`
	JoinLink  string `json:"joinLink,omitempty"`
	Error     string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check <collection-file>",
	Short: "Validate a server collection file",
	Long: `check loads a server collection file, resolves every host, binds every
protocol handler, and derives every query port. It reports the constructed
endpoints, or the per-entry error for entries that fail.

Hostname resolution is the only network activity; --timeout bounds it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
		defer cancel()
		return runCheck(ctx, cmd.OutOrStdout(), newLogger(), args[0], jsonOutput)
	},
}

func runCheck(ctx context.Context, w io.Writer, logger *slog.Logger, path string, asJSON bool) error {
	collection, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}

	logger.Debug("collection loaded", "path", path, "servers", len(collection.Servers))

	results := make([]CheckOutput, 0, len(collection.Servers))
	failed := 0
	for i, sc := range collection.Servers {
		out := CheckOutput{ID: sc.ID, Type: sc.Type, Host: sc.Host}

		srv, err := endpoint.New(ctx, sc.Descriptor())
		if err != nil {
			out.Error = err.Error()
			failed++
			logger.Warn("endpoint rejected", "index", i, "host", sc.Host, "error", err)
			results = append(results, out)
			continue
		}

		out.ID = srv.ID()
		out.IP = srv.IP()
		out.PortQuery = srv.PortQuery()
		if link, err := srv.JoinLink(); err == nil {
			out.JoinLink = link
		}
		logger.Debug("endpoint ok", "id", srv.ID(), "query_port", srv.PortQuery())
		results = append(results, out)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTYPE\tIP\tQUERY PORT\tJOIN LINK\tSTATUS")
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\terror: %s\n", orDash(r.ID), r.Type, r.Error)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\tok\n", r.ID, r.Type, r.IP, r.PortQuery, orDash(r.JoinLink))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d servers failed validation", failed, len(collection.Servers))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "Overall timeout, bounding hostname resolution")
	rootCmd.AddCommand(checkCmd)
}
