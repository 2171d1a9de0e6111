package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/blockguard/blockguard-backend/internal/permission_scanning/domain"
	"github.com/blockguard/blockguard-backend/internal/permission_scanning/rules"
	"github.com/blockguard/blockguard-backend/internal/permission_scanning/scanner"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newScanCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "scan contract source for risky permissions (stdin when file is omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			source, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			s, err := scanner.New(rules.Default())
			if err != nil {
				return errors.Wrap(err, "build scanner")
			}
			report := s.Scan(source)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), path, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(b), nil
}

func printReport(w io.Writer, path string, report domain.ScanReport) {
	header := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	info := color.New(color.FgBlue)
	ok := color.New(color.FgGreen)

	header.Fprintf(w, "%s: score %d (reviewed %s)\n", path, report.Score, report.ReviewedAt.Format("2006-01-02T15:04:05Z07:00"))

	if report.Score == 0 {
		ok.Fprintf(w, "  %s\n", report.Issues[0])
		return
	}
	for _, f := range report.Findings {
		c := warn
		if f.Severity == domain.SeverityInfo {
			c = info
		}
		c.Fprintf(w, "  [%s] %-15s %s\n", f.Severity, f.RuleID, f.Message)
	}
}
