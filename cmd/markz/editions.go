package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEditionsCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "editions",
		Short: "List the embedded editions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, catalog, err := setup(cmd, *cfgFile)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDEFAULT\tREFERENCE\tPERSONNEL")
			for _, name := range catalog.Names() {
				ed, _ := catalog.Edition(name)
				def := ""
				if name == catalog.DefaultName() {
					def = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", name, def, ed.Reference, len(ed.Personnel))
			}
			return tw.Flush()
		},
	}
}
