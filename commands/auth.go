package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/nicgen/buy-02/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	session, err := a.Auth.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintf(a.Out, "Signed in as %s (%s)\n", session.Username, session.Role)
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", string(models.RoleBuyer), "BUYER or SELLER")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("register requires -email and -password")
	}

	session, err := a.Auth.Register(ctx, models.NewUser{
		Email:    *email,
		Password: *password,
		Role:     models.Role(*role),
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintf(a.Out, "Account created, signed in as %s (%s)\n", session.Username, session.Role)
	return nil
}

func (a *App) logout() error {
	a.Auth.Logout()
	return nil
}

func (a *App) whoami() error {
	if !a.Auth.IsAuthenticated() {
		fmt.Fprintln(a.Out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.Out, "%s (%s)\n", a.Auth.CurrentUsername(), a.Auth.CurrentRole())
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	street := fs.String("street", "", "street")
	city := fs.String("city", "", "city")
	zip := fs.String("zip", "", "zip code")
	country := fs.String("country", "", "country")
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	update := models.ProfileUpdate{
		Street:      *street,
		City:        *city,
		Zip:         *zip,
		Country:     *country,
		PhoneNumber: *phone,
		Password:    *password,
	}

	if update != (models.ProfileUpdate{}) {
		if _, err := a.Auth.UpdateProfile(ctx, update); err != nil {
			return fmt.Errorf("could not update profile: %w", err)
		}
		if *password != "" {
			fmt.Fprintln(a.Out, "Password changed")
		} else {
			fmt.Fprintln(a.Out, "Details updated")
		}
		return nil
	}

	profile, err := a.Auth.Profile(ctx)
	if err != nil {
		return fmt.Errorf("could not load profile: %w", err)
	}
	a.table(
		[]string{"EMAIL", "ROLE", "STREET", "CITY", "ZIP", "COUNTRY", "PHONE"},
		[][]string{{
			profile.Email, string(profile.Role), profile.Street,
			profile.City, profile.Zip, profile.Country, profile.PhoneNumber,
		}},
	)
	return nil
}
