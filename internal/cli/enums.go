package cli

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arloliu/go-epl/epl"
)

func newEnumsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "enums",
		Short: "List the legal values of every enumerated attribute",
		Long: `Enums prints the symbolic names and EPL literals accepted by enumerated
attributes. Descriptions may use either spelling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeEnums(cmd.OutOrStdout(), filter)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "name", "", "Only list enumerations whose name contains this text (case-insensitive)")

	return cmd
}

func writeEnums(w io.Writer, filter string) {
	filter = strings.ToLower(filter)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Enumeration", "Name", "Value"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoMergeCells(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, enum := range epl.Enumerations() {
		if filter != "" && !strings.Contains(strings.ToLower(enum.Name), filter) {
			continue
		}
		for _, v := range enum.Values {
			table.Append([]string{enum.Name, v.Name, v.Value})
		}
	}

	table.Render()
}
