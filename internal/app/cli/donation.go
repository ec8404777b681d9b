package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application/types"
	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
)

func (a *app) newDonationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "donation",
		Aliases: []string{"donations"},
		Short:   "Manage donations",
	}
	cmd.AddCommand(a.donationAdd(), a.donationList(), a.donationEdit(), a.donationDelete())
	return cmd
}

func (a *app) donationAdd() *cobra.Command {
	var flags recordFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new donation dated today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := flags.fields()
			if err != nil {
				return err
			}
			d, err := a.service.AddDonation(cmd.Context(), types.AddDonationInput{RecordFields: fields})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added donation %s (%s)\n", d.Key(), d.Status)
			return nil
		},
	}
	flags.bind(cmd.Flags(), "donor", "donor name")
	markRequired(cmd, "donor", "item", "quantity", "category")
	return cmd
}

func (a *app) donationList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List donations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			donations, err := a.service.ListDonations(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]string, 0, len(donations))
			for _, d := range donations {
				rows = append(rows, fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s", d.Donor, d.Item, d.Quantity, d.Category, d.Status, d.Date))
			}
			printTable(cmd.OutOrStdout(), "DONOR\tITEM\tQTY\tCATEGORY\tSTATUS\tDATE", rows)
			return nil
		},
	}
}

func (a *app) donationEdit() *cobra.Command {
	var flags editFlags
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the donation stored under --donor/--item/--date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := flags.key()
			current, err := a.findDonation(cmd, key)
			if err != nil {
				return err
			}
			fields, err := flags.apply(cmd.Flags(), "donor", types.RecordFields{
				Name: current.Donor, Item: current.Item, Quantity: current.Quantity, Category: current.Category,
			})
			if err != nil {
				return err
			}
			d, err := a.service.EditDonation(cmd.Context(), types.EditDonationInput{Key: key, RecordFields: fields})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated donation %s: %d %s (%s)\n", d.Key(), d.Quantity, d.Item, d.Status)
			return nil
		},
	}
	flags.bind(cmd.Flags(), "donor")
	markRequired(cmd, "donor", "item", "date")
	return cmd
}

func (a *app) donationDelete() *cobra.Command {
	var flags keyFlags
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the donation stored under --donor/--item/--date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.service.DeleteDonation(cmd.Context(), flags.key()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted donation %s\n", flags.key())
			return nil
		},
	}
	flags.bind(cmd.Flags(), "donor")
	markRequired(cmd, "donor", "item", "date")
	return cmd
}

func (a *app) findDonation(cmd *cobra.Command, key trackerdomain.NaturalKey) (*trackerdomain.Donation, error) {
	donations, err := a.service.ListDonations(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, d := range donations {
		if d.Key() == key {
			return d, nil
		}
	}
	return nil, fmt.Errorf("donation %s: %w", key, trackerports.ErrNotFound)
}
