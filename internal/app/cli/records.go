package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
)

// recordFlags binds the editable fields shared by donations and wishes.
type recordFlags struct {
	name     string
	item     string
	quantity int
	category string
}

func (f *recordFlags) bind(fs *pflag.FlagSet, nameFlag, nameUsage string) {
	fs.StringVar(&f.name, nameFlag, "", nameUsage)
	fs.StringVar(&f.item, "item", "", "item name")
	fs.IntVar(&f.quantity, "quantity", 0, "non-negative quantity")
	fs.StringVar(&f.category, "category", "", "one of Toys, Clothes, Food, Books, Electronics, Other")
}

func (f *recordFlags) fields() (types.RecordFields, error) {
	category, err := trackerdomain.ParseCategory(f.category)
	if err != nil {
		return types.RecordFields{}, err
	}
	return types.RecordFields{Name: f.name, Item: f.item, Quantity: f.quantity, Category: category}, nil
}

// keyFlags binds the natural key of an existing record.
type keyFlags struct {
	name string
	item string
	date string
}

func (k *keyFlags) bind(fs *pflag.FlagSet, nameFlag string) {
	fs.StringVar(&k.name, nameFlag, "", "name stored on the record")
	fs.StringVar(&k.item, "item", "", "item stored on the record")
	fs.StringVar(&k.date, "date", "", "record date (YYYY-MM-DD)")
}

func (k keyFlags) key() trackerdomain.NaturalKey {
	return trackerdomain.NaturalKey{Name: k.name, Item: k.item, Date: k.date}
}

// editFlags overrides the current values only for flags the user set.
type editFlags struct {
	keyFlags
	setName     string
	setItem     string
	setQuantity int
	setCategory string
}

func (e *editFlags) bind(fs *pflag.FlagSet, nameFlag string) {
	e.keyFlags.bind(fs, nameFlag)
	fs.StringVar(&e.setName, "set-"+nameFlag, "", "new "+nameFlag)
	fs.StringVar(&e.setItem, "set-item", "", "new item name")
	fs.IntVar(&e.setQuantity, "set-quantity", 0, "new quantity")
	fs.StringVar(&e.setCategory, "set-category", "", "new category")
}

func (e *editFlags) apply(fs *pflag.FlagSet, nameFlag string, current types.RecordFields) (types.RecordFields, error) {
	out := current
	if fs.Changed("set-" + nameFlag) {
		out.Name = e.setName
	}
	if fs.Changed("set-item") {
		out.Item = e.setItem
	}
	if fs.Changed("set-quantity") {
		out.Quantity = e.setQuantity
	}
	if fs.Changed("set-category") {
		category, err := trackerdomain.ParseCategory(e.setCategory)
		if err != nil {
			return types.RecordFields{}, err
		}
		out.Category = category
	}
	return out, nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}

func printTable(out io.Writer, header string, rows []string) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		fmt.Fprintln(tw, row)
	}
	_ = tw.Flush()
}
