package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"singsing/storefront/internal/app/infra/pricefile"
	"singsing/storefront/internal/app/infra/pricesheet"
)

type importOptions struct {
	excel    string
	products string
	out      string
	js       string
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &importOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "priceimport",
		Short: "Build the price table from the supply price workbook",
		Long: `Reads the [품목 / 포장단위 / 최종단가(원)] table of the supply workbook
(sheet 공급표, then 공지사항, then any other sheet) and writes the price table JSON.
Names are matched against the product catalog, or against --products when given.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.excel, "excel", "SINGSING_SUPPLY_PRICE_LIST.xlsx", "supply price workbook (.xlsx)")
	cmd.Flags().StringVar(&opts.products, "products", "", "products JSON ([{id, name}]) to match names against")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "assets/prices.json", "price table JSON to write")
	cmd.Flags().StringVar(&opts.js, "js", "", "also write the table as a browser script (window.SINGSING_PRICE_TABLE)")
	return cmd
}

func runImport(opts *importOptions, out io.Writer) error {
	names := pricesheet.CatalogIndex()
	if opts.products != "" {
		idx, err := pricesheet.LoadNameIndex(opts.products)
		if err != nil {
			return err
		}
		names = idx
	}

	sheet, err := pricesheet.ReadFile(opts.excel)
	if err != nil {
		return err
	}

	res := pricesheet.BuildTable(sheet.Rows, names, opts.now().Format("2006-01-02 15:04:05"))
	if err := pricefile.Save(opts.out, res.Table); err != nil {
		return err
	}
	fmt.Fprintf(out, "[done] %s written from sheet %q (%d products)\n", opts.out, sheet.Sheet, len(res.Table.Items))

	if opts.js != "" {
		if err := writeScript(opts.js, opts.excel, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "[done] %s written\n", opts.js)
	}
	if res.Invalid > 0 {
		fmt.Fprintf(out, "[warn] %d rows had an unreadable pack or price\n", res.Invalid)
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintf(out, "[warn] skipped names not in the catalog: %s\n", strings.Join(res.Skipped, ", "))
	}
	return nil
}

// writeScript renders the table for static pages that load it with a
// <script> tag.
func writeScript(path, source string, res *pricesheet.Result) error {
	payload, err := json.MarshalIndent(res.Table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode price table failed: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "// Auto-generated from %s\n", filepath.Base(source))
	fmt.Fprintf(&b, "window.SINGSING_PRICE_TABLE = %s;\n", payload)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s failed: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s failed: %w", path, err)
	}
	return nil
}
