// Package cmd implements the CLI application to manage the dashboard.
package cmd

import (
	"flag"
	"strings"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&txCmd{}, "records")
	c.Register(&accountCmd{}, "records")
	c.Register(&investCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&trendsCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")

	c.Register(&ratesCmd{}, "currency")
	c.Register(&convertCmd{}, "currency")

	c.Register(&setupCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&clearCmd{}, "data")

	c.Register(&AssistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", ".fd", "Path to the data folder")
var currencyFlag = flag.String("currency", "HKD", "Display currency for reports")

// OpenStore opens the record store backed by the app data folder. A missing
// or partial folder is seeded and never an error.
func OpenStore() (*dashboard.Store, error) {
	return dashboard.OpenStore(dashboard.NewDirStore(*dataPath))
}

// DisplayCurrency is the currency reports format amounts in.
func DisplayCurrency() dashboard.Currency {
	return dashboard.Currency(strings.ToUpper(*currencyFlag))
}
