// Package commands is the view layer: each command is the CLI counterpart of
// one of the storefront's screens, bound to the domain services.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nicgen/buy-02/services"
)

// App holds the wired services and renders command output. It implements
// services.Navigator: "navigating" in a CLI prints where the user landed.
type App struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Orders   *services.OrderService
	Wishlist *services.WishlistService
	Cart     *services.CartService
	Checkout *services.CheckoutService

	Out io.Writer

	lastRoute string
}

// NavigateTo implements services.Navigator. Repeated navigation to the same
// route stays quiet, matching router semantics.
func (a *App) NavigateTo(route string) {
	if route == a.lastRoute {
		return
	}
	a.lastRoute = route

	switch route {
	case services.RouteLogin:
		fmt.Fprintln(a.Out, "You have been signed out. Run `login` to sign in again.")
	case services.RouteOrders:
		fmt.Fprintln(a.Out, "Order placed. Run `orders` to see your order history.")
	default:
		// External destination, e.g. a hosted payment page.
		fmt.Fprintf(a.Out, "Continue in your browser: %s\n", route)
	}
}

// Run dispatches a command line. The first argument selects the screen, the
// rest are flags for it.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}
	a.lastRoute = ""

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "profile":
		return a.profile(ctx, rest)
	case "products":
		return a.products(ctx, rest)
	case "cart":
		return a.cart(ctx, rest)
	case "checkout":
		return a.checkout(ctx, rest)
	case "orders":
		return a.orders(ctx, rest)
	case "wishlist":
		return a.wishlist(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, strings.TrimSpace(`
Usage: storefront <command> [flags]

Commands:
  login       Sign in (-email, -password)
  register    Create an account (-email, -password, -role)
  logout      Sign out and clear the local session
  whoami      Show the current session
  profile     Show or update account details
  products    Browse the catalog (list, search, filter, mine, create, delete)
  cart        Manage the local cart (show, add, remove)
  checkout    Place an order for the cart
  orders      Order history, status updates, stats
  wishlist    Show or toggle wishlist entries
`))
}

// table renders rows with aligned columns.
func (a *App) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
