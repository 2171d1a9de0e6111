package main

import (
	"fmt"
	"strings"

	"github.com/blockguard/blockguard-backend/internal/attack_education/catalog"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAttackCommand() *cobra.Command {
	attacks := catalog.Default()

	return &cobra.Command{
		Use:   "attack <type>",
		Short: "print an exploit template (" + strings.Join(attacks.Types(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := attacks.Lookup(args[0])
			if err != nil {
				return errors.Wrapf(err, "attack %q", args[0])
			}

			w := cmd.OutOrStdout()
			title := color.New(color.FgRed, color.Bold)

			title.Fprintln(w, "// vulnerable contract")
			fmt.Fprintln(w, strings.TrimSpace(tpl.VulnerableContract))
			fmt.Fprintln(w)
			title.Fprintln(w, "// attacker contract")
			fmt.Fprintln(w, strings.TrimSpace(tpl.AttackerContract))
			fmt.Fprintln(w)
			color.New(color.FgYellow).Fprintln(w, tpl.Explanation)
			return nil
		},
	}
}
