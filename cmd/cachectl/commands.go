package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"govdataviz/internal/app"
)

// opener открывает кэш и возвращает функцию закрытия.
type opener func(ctx context.Context) (app.CacheStore, func() error, error)

// newRootCmd собирает дерево команд cachectl.
func newRootCmd(open opener) *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "cachectl",
		Short:        "Inspect and maintain the govdataviz response cache",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "operation timeout")

	// withCache открывает кэш, выполняет fn и закрывает кэш.
	withCache := func(cmd *cobra.Command, fn func(ctx context.Context, c app.CacheStore) error) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		c, closeFn, err := open(ctx)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer closeFn()
		return fn(ctx, c)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a cached value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(cmd, func(ctx context.Context, c app.CacheStore) error {
					v, ok, err := c.Get(ctx, args[0])
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("key %q not found", args[0])
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(v))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "del <key>",
			Short: "Delete a cached value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(cmd, func(ctx context.Context, c app.CacheStore) error {
					return c.Delete(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "exists <key>",
			Short: "Report whether a key holds an unexpired value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(cmd, func(ctx context.Context, c app.CacheStore) error {
					ok, err := c.Exists(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), ok)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List unexpired keys",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(cmd, func(ctx context.Context, c app.CacheStore) error {
					keys, err := c.Keys(ctx)
					if err != nil {
						return err
					}
					for _, k := range keys {
						fmt.Fprintln(cmd.OutOrStdout(), k)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Remove expired entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCache(cmd, func(ctx context.Context, c app.CacheStore) error {
					n, err := c.Purge(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired entries\n", n)
					return nil
				})
			},
		},
	)
	return root
}
