package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evandalmeida/eDashboard/app"
	"github.com/evandalmeida/eDashboard/config"
	"github.com/evandalmeida/eDashboard/internal/currency"
	"github.com/evandalmeida/eDashboard/internal/dto"
	"github.com/evandalmeida/eDashboard/internal/entity"
	"github.com/evandalmeida/eDashboard/log"
	"github.com/spf13/cobra"
)

var (
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Build the dashboard once and print it",
		RunE:  report,
	}

	reportStart string
	reportEnd   string
	reportBasis string
)

func init() {
	reportCmd.Flags().StringVar(&reportStart, "start", "", "first day, YYYY-MM-DD (default: lookback start)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "last day, YYYY-MM-DD (default: today)")
	reportCmd.Flags().StringVar(&reportBasis, "basis", string(entity.BasisTotalPrice), "revenue basis: total_price, subtotal_price or line_items")
}

func report(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	setupReportLogging(cmd, &cfg.Logger)

	basis, err := entity.ParseRevenueBasis(reportBasis)
	if err != nil {
		return err
	}
	svc, err := app.NewDashboard(cfg)
	if err != nil {
		return err
	}

	def := svc.DefaultRange()
	start, end := reportStart, reportEnd
	if start == "" {
		start = entity.DateKey(def.Start)
	}
	if end == "" {
		end = entity.DateKey(def.End)
	}
	r, err := entity.ParseDateRange(start, end, svc.Location())
	if err != nil {
		return err
	}

	d, err := svc.Build(cmd.Context(), r, basis)
	if err != nil {
		return err
	}
	return printDashboard(cmd.OutOrStdout(), dto.ConvertEntityDashboard(d))
}

// setupReportLogging keeps log lines on stderr so stdout carries only the report.
func setupReportLogging(cmd *cobra.Command, c *log.Config) {
	log.Setup(c, cmd.ErrOrStderr())
}

func printDashboard(out io.Writer, d *dto.Dashboard) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "%s..%s\t%s\t\n\n", d.Start, d.End, d.Basis)
	fmt.Fprintf(w, "Sales\t%s\t\n", d.KPIs.SalesTotal)
	fmt.Fprintf(w, "Ad spend\t%s\t\n", d.KPIs.AdSpendTotal)
	fmt.Fprintf(w, "COGS\t%s\t\n", d.KPIs.CogsTotal)
	fmt.Fprintf(w, "Profit\t%s\t\n", d.KPIs.Profit)
	fmt.Fprintf(w, "ROI\t%s\t\n", d.KPIs.ROI)
	fmt.Fprintf(w, "ROAS\t%s\t\n", d.KPIs.ROAS)

	if len(d.Notices) > 0 {
		fmt.Fprintln(w)
		for _, n := range d.Notices {
			fmt.Fprintf(w, "[%s]\t%s\t\n", n.Level, n.Message)
		}
	}

	fmt.Fprintf(w, "\nDate\tShopify\tFB\tCJ\tNet\t\n")
	for _, row := range d.Ledger {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", row.Date,
			currency.Money(row.ShopifySales),
			currency.Money(row.FBSpend),
			currency.Money(row.CJCost),
			currency.Money(row.Net),
		)
	}
	return w.Flush()
}
