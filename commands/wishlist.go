package commands

import (
	"context"
	"flag"
	"fmt"
)

func (a *App) wishlist(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "show":
		ids, err := a.Wishlist.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load wishlist: %w", err)
		}
		if len(ids) == 0 {
			fmt.Fprintln(a.Out, "Your wishlist is empty")
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(a.Out, id)
		}
		return nil

	case "toggle":
		fs := flag.NewFlagSet("wishlist toggle", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		id := fs.String("id", "", "product id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("wishlist toggle requires -id")
		}
		if err := a.Wishlist.Toggle(ctx, *id); err != nil {
			return fmt.Errorf("could not update wishlist: %w", err)
		}
		fmt.Fprintf(a.Out, "Toggled %s\n", *id)
		return nil

	default:
		return fmt.Errorf("unknown wishlist subcommand %q", sub)
	}
}
