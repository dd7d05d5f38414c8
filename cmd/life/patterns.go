package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiny-life/internal/config"
)

func newPatternsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns available to --pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(cfg)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range lib.Names() {
				p, err := lib.Get(name)
				if err != nil {
					return err
				}
				b := p.Bounds()
				fmt.Fprintf(w, "%-14s %3dx%-3d %s\n", name, b.Dx(), b.Dy(), p.Description)
			}
			return nil
		},
	}
}
