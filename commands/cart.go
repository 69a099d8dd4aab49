package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/nicgen/buy-02/models"
)

func (a *App) cart(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "show":
		a.renderCart()
		return nil

	case "add":
		fs := flag.NewFlagSet("cart add", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		id := fs.String("id", "", "product id")
		qty := fs.Int("quantity", 1, "quantity to add")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("cart add requires -id")
		}

		// Shoppers add from the catalog, so resolve the product first.
		list, err := a.Products.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		for _, p := range list {
			if p.ID == *id {
				a.Cart.Add(models.CartItem{
					ID:       p.ID,
					Name:     p.Name,
					Price:    p.Price,
					Quantity: *qty,
					SellerID: p.SellerID,
				})
				a.renderCart()
				return nil
			}
		}
		return fmt.Errorf("no product with id %q", *id)

	case "remove":
		fs := flag.NewFlagSet("cart remove", flag.ContinueOnError)
		fs.SetOutput(a.Out)
		id := fs.String("id", "", "product id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("cart remove requires -id")
		}
		a.Cart.Remove(*id)
		a.renderCart()
		return nil

	default:
		return fmt.Errorf("unknown cart subcommand %q", sub)
	}
}

func (a *App) renderCart() {
	items := a.Cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.Out, "Your cart is empty")
		return
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID, item.Name,
			strconv.FormatFloat(item.Price, 'f', 2, 64),
			strconv.Itoa(item.Quantity),
			strconv.FormatFloat(item.Price*float64(item.Quantity), 'f', 2, 64),
		})
	}
	a.table([]string{"ID", "NAME", "PRICE", "QTY", "LINE TOTAL"}, rows)
	fmt.Fprintf(a.Out, "Total: %.2f\n", a.Cart.Total())
}

func (a *App) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	payment := fs.String("payment", models.PaymentPayOnDelivery, "PAY_ON_DELIVERY or CARD_REDIRECT")
	street := fs.String("street", "", "street")
	city := fs.String("city", "", "city")
	zip := fs.String("zip", "", "zip code")
	country := fs.String("country", "", "country")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	address := models.ShippingAddress{
		Street:      *street,
		City:        *city,
		Zip:         *zip,
		Country:     *country,
		PhoneNumber: *phone,
	}

	// Prefill from the saved profile, as the cart screen does.
	if !address.Complete() && a.Auth.IsAuthenticated() {
		if profile, err := a.Auth.Profile(ctx); err == nil {
			if address.Street == "" {
				address.Street = profile.Street
			}
			if address.City == "" {
				address.City = profile.City
			}
			if address.Zip == "" {
				address.Zip = profile.Zip
			}
			if address.Country == "" {
				address.Country = profile.Country
			}
			if address.PhoneNumber == "" {
				address.PhoneNumber = profile.PhoneNumber
			}
		}
	}

	order, err := a.Checkout.Checkout(ctx, *payment, address)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	fmt.Fprintf(a.Out, "Order %s placed, total %.2f\n", order.ID, order.TotalAmount)
	return nil
}
