package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/nicgen/buy-02/models"
)

func (a *App) products(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		list, err := a.Products.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		a.renderProducts(ctx, list)
		return nil

	case "search":
		fs := flag.NewFlagSet("products search", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		query := fs.String("query", "", "search text; empty lists everything")
		if err := fs.Parse(args); err != nil {
			return err
		}
		list, err := a.Products.Search(ctx, *query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		a.renderProducts(ctx, list)
		return nil

	case "filter":
		fs := flag.NewFlagSet("products filter", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		min := fs.Float64("min", -1, "minimum price")
		max := fs.Float64("max", -1, "maximum price")
		query := fs.String("query", "", "search text")
		if err := fs.Parse(args); err != nil {
			return err
		}
		var minPrice, maxPrice *float64
		if *min >= 0 {
			minPrice = min
		}
		if *max >= 0 {
			maxPrice = max
		}
		list, err := a.Products.Filter(ctx, minPrice, maxPrice, *query)
		if err != nil {
			return fmt.Errorf("filter failed: %w", err)
		}
		a.renderProducts(ctx, list)
		return nil

	case "mine":
		list, err := a.Products.SellerProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to load your products: %w", err)
		}
		a.renderProducts(ctx, list)
		return nil

	case "create":
		fs := flag.NewFlagSet("products create", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		name := fs.String("name", "", "product name")
		desc := fs.String("desc", "", "description")
		price := fs.Float64("price", 0, "unit price")
		qty := fs.Int("quantity", 0, "stock quantity")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" || *price <= 0 {
			return fmt.Errorf("products create requires -name and a positive -price")
		}
		created, err := a.Products.Create(ctx, models.Product{
			Name:        *name,
			Description: *desc,
			Price:       *price,
			Quantity:    *qty,
		})
		if err != nil {
			return fmt.Errorf("could not create product: %w", err)
		}
		fmt.Fprintf(a.Out, "Created %s (%s)\n", created.Name, created.ID)
		return nil

	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		id := fs.String("id", "", "product id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("products delete requires -id")
		}
		if err := a.Products.Delete(ctx, *id); err != nil {
			return fmt.Errorf("could not delete product: %w", err)
		}
		fmt.Fprintf(a.Out, "Deleted %s\n", *id)
		return nil

	default:
		return fmt.Errorf("unknown products subcommand %q", sub)
	}
}

// renderProducts prints the catalog, marking wishlist membership when the
// shopper is signed in.
func (a *App) renderProducts(ctx context.Context, list []models.Product) {
	wishlisted := map[string]bool{}
	if a.Auth.IsAuthenticated() {
		ids, err := a.Wishlist.List(ctx)
		if err == nil {
			for _, id := range ids {
				wishlisted[id] = true
			}
		}
	}

	rows := make([][]string, 0, len(list))
	for _, p := range list {
		mark := ""
		if wishlisted[p.ID] {
			mark = "*"
		}
		rows = append(rows, []string{
			p.ID, p.Name,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Quantity),
			mark,
		})
	}
	a.table([]string{"ID", "NAME", "PRICE", "STOCK", "WISHLIST"}, rows)
}
