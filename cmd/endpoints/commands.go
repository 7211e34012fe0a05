package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sushanth18052005/mt5-EA/pkg/endpoints"
)

func newBaseURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "base-url",
		Short: "print the resolved backend base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.registry.BaseURL())
			return err
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [CATEGORY]",
		Short: "list endpoints, optionally restricted to one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.registry.Entries()
			if len(args) == 1 {
				category, err := endpoints.ParseCategory(args[0])
				if err != nil {
					return err
				}
				if entries, err = a.registry.ByCategory(category); err != nil {
					return err
				}
			}
			a.logger.Debug("listing endpoints", "count", len(entries), "output", a.output)
			return writeEntries(cmd.OutOrStdout(), a.output, entries)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get CATEGORY NAME",
		Short:   "print the URL of a single endpoint",
		Example: "  endpoints get auth login\n  endpoints get admin slave-delete -o json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := endpoints.ParseCategory(args[0])
			if err != nil {
				return err
			}
			name, err := endpoints.ParseName(category, args[1])
			if err != nil {
				return err
			}

			e, err := a.registry.Find(category, name)
			if err != nil {
				return err
			}
			return writeEntry(cmd.OutOrStdout(), a.output, e)
		},
	}
}
