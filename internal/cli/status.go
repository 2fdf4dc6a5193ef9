package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bootstate-dev/bootstate/internal/config"
	"github.com/bootstate-dev/bootstate/pkg/client"
	"github.com/bootstate-dev/bootstate/pkg/printer"
	"github.com/bootstate-dev/bootstate/pkg/types"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	noHeaders    bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current set of bootable deployments",
	Long:  `Queries rpm-ostree for the ordered set of bootable deployments and prints them. The booted deployment is marked with *.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			printer.PrintError(err.Error())
			return err
		}

		c := client.New(client.Options{
			Command:     cfg.Command,
			MaxAttempts: cfg.MaxAttempts,
			Pause:       cfg.Pause,
		})
		status, err := c.QueryStatus(cmd.Context())
		if err != nil {
			printer.PrintError(err.Error())
			return err
		}

		switch printer.OutputType(outputFormat) {
		case printer.OutputTypeJSON:
			return outputDataJson(status)
		case printer.OutputTypeYAML:
			return outputDataYaml(status)
		case printer.OutputTypeTable, printer.OutputTypeWide:
			return displayStatusTable(os.Stdout, status, outputFormat == string(printer.OutputTypeWide))
		default:
			return fmt.Errorf("unsupported output format: %s", outputFormat)
		}
	},
}

// displayStatusTable renders deployments in source order, one row each.
func displayStatusTable(out io.Writer, status *types.Status, wide bool) error {
	opts := []printer.Option{}
	if noHeaders {
		opts = append(opts, printer.WithNoHeaders())
	}
	p := printer.NewTablePrinter(out, opts...)

	headers := []string{"booted", "osname", "checksum", "serial", "origin", "pinned"}
	if wide {
		headers = append(headers, "staged", "unlocked")
	}
	p.SetHeaders(headers...)

	for _, d := range status.Deployments {
		row := []any{
			printer.FormatBooted(d.Booted),
			d.Osname,
			printer.ShortChecksum(d.Checksum),
			d.Serial,
			d.Origin,
			d.Pinned,
		}
		if wide {
			row = append(row,
				printer.FormatOptionalBool(d.Staged),
				formatUnlocked(d.Unlocked),
			)
		}
		p.AddRow(row...)
	}

	return p.Render()
}

func formatUnlocked(unlocked *string) string {
	if unlocked == nil {
		return "<none>"
	}
	return printer.EmptyValueOrDefault(*unlocked, "<none>")
}

func outputDataJson(data any) error {
	p := printer.New(printer.OutputTypeJSON)
	if err := p.PrintJSON(data); err != nil {
		return fmt.Errorf("failed to output JSON: %w", err)
	}
	return nil
}

func outputDataYaml(data any) error {
	p := printer.New(printer.OutputTypeYAML)
	if err := p.PrintYAML(data); err != nil {
		return fmt.Errorf("failed to output YAML: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, wide, json, yaml)")
	statusCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit the table header row")
}
