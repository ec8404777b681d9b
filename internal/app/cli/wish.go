package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

func (a *app) newWishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wish",
		Aliases: []string{"wishes"},
		Short:   "Manage wishes",
	}
	cmd.AddCommand(a.wishAdd(), a.wishList(), a.wishEdit(), a.wishDelete())
	return cmd
}

func (a *app) wishAdd() *cobra.Command {
	var flags recordFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new wish dated today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := flags.fields()
			if err != nil {
				return err
			}
			w, err := a.service.AddWish(cmd.Context(), types.AddWishInput{RecordFields: fields})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added wish %s (%s)\n", w.Key(), w.Status)
			return nil
		},
	}
	flags.bind(cmd.Flags(), "recipient", "recipient name")
	markRequired(cmd, "recipient", "item", "quantity", "category")
	return cmd
}

func (a *app) wishList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wishes, err := a.service.ListWishes(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]string, 0, len(wishes))
			for _, w := range wishes {
				rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s", w.Recipient, w.Item, w.Quantity, w.Category, w.Status, w.Date))
			}
			printTable(cmd.OutOrStdout(), "RECIPIENT\tITEM\tQTY\tCATEGORY\tSTATUS\tDATE", rows)
			return nil
		},
	}
}

func (a *app) wishEdit() *cobra.Command {
	var flags editFlags
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the wish stored under --recipient/--item/--date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := flags.key()
			current, err := a.findWish(cmd, key)
			if err != nil {
				return err
			}
			fields, err := flags.apply(cmd.Flags(), "recipient", types.RecordFields{
				Name: current.Recipient, Item: current.Item, Quantity: current.Quantity, Category: current.Category,
			})
			if err != nil {
				return err
			}
			w, err := a.service.EditWish(cmd.Context(), types.EditWishInput{Key: key, RecordFields: fields})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated wish %s: %d %s (%s)\n", w.Key(), w.Quantity, w.Item, w.Status)
			return nil
		},
	}
	flags.bind(cmd.Flags(), "recipient")
	markRequired(cmd, "recipient", "item", "date")
	return cmd
}

func (a *app) wishDelete() *cobra.Command {
	var flags keyFlags
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the wish stored under --recipient/--item/--date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.service.DeleteWish(cmd.Context(), flags.key()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted wish %s\n", flags.key())
			return nil
		},
	}
	flags.bind(cmd.Flags(), "recipient")
	markRequired(cmd, "recipient", "item", "date")
	return cmd
}

func (a *app) findWish(cmd *cobra.Command, key trackerdomain.NaturalKey) (*trackerdomain.Wish, error) {
	wishes, err := a.service.ListWishes(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, w := range wishes {
		if w.Key() == key {
			return w, nil
		}
	}
	return nil, fmt.Errorf("wish %s: %w", key, trackerports.ErrNotFound)
}
