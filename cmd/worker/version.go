package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.BuildVersion=..."
var (
	BuildVersion = "dev"
	BuildTime    string
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printField(cmd.OutOrStdout(), "BuildVersion", BuildVersion)
			printField(cmd.OutOrStdout(), "BuildTime", BuildTime)
		},
	}
}

func printField(w io.Writer, name, value string) {
	color.New(color.FgCyan).Fprintf(w, "%-16s", name)
	_, _ = io.WriteString(w, " "+value+"\n")
}
