// Command priceimport turns the supply price workbook into the price table
// the storefront prices carts with.
//
//	priceimport --excel SINGSING_SUPPLY_PRICE_LIST.xlsx --out assets/prices.json
//
// Send SIGHUP to a running apiserver afterwards to pick up the new table.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
