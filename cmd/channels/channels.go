// Package channels lists the payment channel catalogue
package channels

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/siro-files/internal/rendition"

	"github.com/spf13/cobra"
)

// Cmd represents the channels command
var Cmd = &cobra.Command{
	Use:   "channels",
	Short: "List the payment channels accepted by 'rendition'",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Print(cmd.OutOrStdout(), rendition.Channels())
	},
}

// Print writes one row per channel: code, class, accreditation offset,
// online behavior and description.
func Print(out io.Writer, channels []rendition.Channel) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tCLASS\tDAYS\tONLINE\tDESCRIPTION")
	for _, ch := range channels {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", ch.Code, ch.Class, ch.AccreditationDays, ch.Online, ch.Description)
	}
	return w.Flush()
}
