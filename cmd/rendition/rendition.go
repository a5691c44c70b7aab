// Package rendition handles the settlement (rendition) batch command
package rendition

import (
	"fmt"
	"io"

	"fjacquet/siro-files/cmd/root"
	"fjacquet/siro-files/internal/container"
	"fjacquet/siro-files/internal/fileutils"
	"fjacquet/siro-files/internal/logging"
	"fjacquet/siro-files/internal/rendition"

	"github.com/spf13/cobra"
)

// Options holds the rendition command flags.
type Options struct {
	Channels      []string
	DebtBase      string // path to an uploaded debt base
	PaymentDate   string
	BrandSendDate string
	Barcode       string
	PaidAmount    string
	Online        bool
	BPCSingle     bool
	BPCMulti      bool
	Seed          int64 // 0 keeps the configured seed
}

// Flags holds the values bound to the command line
var Flags = Options{}

// Cmd represents the rendition command
var Cmd = &cobra.Command{
	Use:   "rendition",
	Short: "Build a settlement (rendition) batch",
	Long: `Build one 476-character settlement record per selected payment channel.
Non-cash channels derive their barcode, invoice id and first due date from
the optional debt base; cash channels use the operator barcode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		opts := Flags
		if !cmd.Flags().Changed("online") {
			opts.Online = c.GetConfig().Rendition.OnlinePayments
		}
		return Run(c, opts, root.SharedFlags.Output, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringSliceVar(&Flags.Channels, "channels", nil, "Comma-separated channel codes (see 'channels')")
	Cmd.Flags().StringVar(&Flags.DebtBase, "debt-base", "", "Debt-base file the records settle")
	Cmd.Flags().StringVar(&Flags.PaymentDate, "payment-date", "", "Payment date (YYYY-MM-DD, DD/MM/YYYY or YYYYMMDD)")
	Cmd.Flags().StringVar(&Flags.BrandSendDate, "brand-date", "", "Card-brand send date")
	Cmd.Flags().StringVar(&Flags.Barcode, "barcode", "", "Operator barcode for cash channels")
	Cmd.Flags().StringVar(&Flags.PaidAmount, "amount", "", "Paid amount (e.g. 1000.50)")
	Cmd.Flags().BoolVar(&Flags.Online, "online", false, "Mark eligible channels as online payments")
	Cmd.Flags().BoolVar(&Flags.BPCSingle, "bpc-single", false, "Button-credit record with one installment")
	Cmd.Flags().BoolVar(&Flags.BPCMulti, "bpc-multi", false, "Button-credit record with 2 to 6 installments")
	Cmd.Flags().Int64Var(&Flags.Seed, "seed", 0, "Random seed (0 uses rendition.seed)")
}

// Run builds the batch described by opts and writes it to output, or to out
// when output is empty.
func Run(c *container.Container, opts Options, output string, out io.Writer) error {
	if len(opts.Channels) == 0 {
		return fmt.Errorf("at least one channel is required (--channels)")
	}

	req := rendition.Request{
		Channels:       opts.Channels,
		PaymentDate:    opts.PaymentDate,
		BrandSendDate:  opts.BrandSendDate,
		Barcode:        opts.Barcode,
		PaidAmount:     opts.PaidAmount,
		OnlinePayments: opts.Online,
		BPCSingle:      opts.BPCSingle,
		BPCMulti:       opts.BPCMulti,
	}
	if opts.DebtBase != "" {
		content, err := fileutils.ReadTextFile(opts.DebtBase, c.GetConfig().Input.Encoding)
		if err != nil {
			return fmt.Errorf("failed to read debt base: %w", err)
		}
		req.DebtBase = content
	}

	ids, err := c.NewPaymentIDs()
	if err != nil {
		return err
	}

	batch, err := builderFor(c, opts.Seed).BuildBatch(ids, req)
	if err != nil {
		return err
	}
	if len(batch.Lines) == 0 {
		return fmt.Errorf("no settlement record was built")
	}

	if err := fileutils.WriteOutput(output, batch.Text+"\n", out); err != nil {
		return err
	}
	c.GetLogger().Info("Rendition written",
		logging.Field{Key: logging.FieldOutputFile, Value: output},
		logging.Field{Key: logging.FieldCount, Value: len(batch.Lines)})
	return nil
}

func builderFor(c *container.Container, seed int64) *rendition.Builder {
	if seed == 0 {
		return c.GetRenditionBuilder()
	}
	cfg := c.GetConfig().Rendition
	return rendition.NewBuilder(c.GetLogger(),
		rendition.WithSeed(seed),
		rendition.WithPaymentIDNode(cfg.NodeID, cfg.PaymentIDAttempts),
		rendition.WithStrictWidths(cfg.StrictWidths))
}
