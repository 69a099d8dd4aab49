package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"
)

func (a *App) orders(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		list, err := a.Orders.MyOrders(ctx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		rows := make([][]string, 0, len(list))
		for _, o := range list {
			rows = append(rows, []string{
				o.ID, o.Status,
				strconv.FormatFloat(o.TotalAmount, 'f', 2, 64),
				strconv.Itoa(len(o.Items)),
				o.PaymentMethod,
			})
		}
		a.table([]string{"ID", "STATUS", "TOTAL", "ITEMS", "PAYMENT"}, rows)
		return nil

	case "all":
		list, err := a.Orders.AllOrders(ctx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		rows := make([][]string, 0, len(list))
		for _, o := range list {
			rows = append(rows, []string{o.ID, o.UserID, o.Status, strconv.FormatFloat(o.TotalAmount, 'f', 2, 64)})
		}
		a.table([]string{"ID", "USER", "STATUS", "TOTAL"}, rows)
		return nil

	case "status":
		fs := flag.NewFlagSet("orders status", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		id := fs.String("id", "", "order id")
		status := fs.String("status", "", "new status (PENDING, SHIPPED, DELIVERED, CANCELLED)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" || *status == "" {
			return fmt.Errorf("orders status requires -id and -status")
		}
		updated, err := a.Orders.UpdateStatus(ctx, *id, *status)
		if err != nil {
			return fmt.Errorf("could not update order: %w", err)
		}
		fmt.Fprintf(a.Out, "Order %s is now %s\n", updated.ID, updated.Status)
		return nil

	case "stats":
		fs := flag.NewFlagSet("orders stats", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		seller := fs.Bool("seller", false, "show seller stats instead of buyer stats")
		if err := fs.Parse(args); err != nil {
			return err
		}

		userID := a.Auth.UserID()
		if userID == "" {
			return fmt.Errorf("stats need a signed-in user with an id claim in its token")
		}

		if *seller {
			stats, err := a.Orders.SellerStats(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to load seller stats: %w", err)
			}
			fmt.Fprintf(a.Out, "Total sales: %.2f\nItems sold: %d\n", stats.TotalSales, stats.TotalItemsSold)
			return nil
		}

		stats, err := a.Orders.UserStats(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}
		fmt.Fprintf(a.Out, "Total spent: %.2f\nCompleted orders: %d\nTotal orders: %d\n",
			stats.TotalSpent, stats.CompletedOrders, stats.TotalOrders)
		return nil

	default:
		return fmt.Errorf("unknown orders subcommand %q", sub)
	}
}
