package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"kedai/internal/domain/entity"
	"kedai/internal/usecase"
	"kedai/internal/usecase/impl"
	"kedai/internal/util"

	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

var commandOrder = []string{
	"login", "logout", "list", "get", "add", "edit", "delete",
	"select", "selected", "pick", "search", "qr",
}

func newCommands() map[string]*command {
	return map[string]*command{
		"login":    loginCommand(),
		"logout":   simpleCommand("logout", "Forget the stored session", runLogout),
		"list":     simpleCommand("list", "List addresses, default first", runList),
		"get":      getCommand(),
		"add":      addCommand(),
		"edit":     editCommand(),
		"delete":   deleteCommand(),
		"select":   selectCommand(),
		"selected": simpleCommand("selected", "Show the selected delivery address", runSelected),
		"pick":     pickCommand(),
		"search":   searchCommand(),
		"qr":       qrCommand(),
	}
}

func simpleCommand(name, usage string, run func(ctx context.Context, d *deps) error) *command {
	return &command{
		flags: flag.NewFlagSet(name, flag.ExitOnError),
		usage: usage,
		run:   run,
	}
}

func loginCommand() *command {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "Bearer token issued by the backend")
	customerID := fs.String("customer", "", "Customer id, when the token does not carry one")
	name := fs.String("name", "", "Customer display name")

	return &command{
		flags: fs,
		usage: "Store a bearer token as the current session",
		run: func(ctx context.Context, d *deps) error {
			if err := d.Inspector.CheckToken(*token); err != nil {
				return err
			}

			id := strings.TrimSpace(*customerID)
			if id == "" {
				id = d.Inspector.CustomerID(*token)
			}
			if id == "" {
				return errors.New("customer id not found in token, pass -customer")
			}

			s := &entity.Session{
				Token:    *token,
				Customer: &entity.Customer{ID: id, Name: *name},
			}
			if err := d.Sessions.SaveSession(ctx, s); err != nil {
				return err
			}

			printf("Signed in as %s\n", id)

			return nil
		},
	}
}

func runLogout(ctx context.Context, d *deps) error {
	if err := d.Sessions.ClearSession(ctx); err != nil {
		return err
	}

	printf("Signed out\n")

	return nil
}

func runList(ctx context.Context, d *deps) error {
	screen := impl.NewScreen(ctx)
	defer screen.Close()

	view, err := impl.NewAddressList(screen, d.Addresses).Refresh()
	if err != nil {
		return err
	}

	printAddressList(view, d.Addresses.DisplayPhone)

	return nil
}

func getCommand() *command {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "Address id")

	return &command{
		flags: fs,
		usage: "Show one address",
		run: func(ctx context.Context, d *deps) error {
			address, err := d.Addresses.GetAddress(ctx, *id)
			if err != nil {
				return err
			}

			return printJSON(address)
		},
	}
}

// addressFlags are the form fields shared by add and edit.
type addressFlags struct {
	fs        *flag.FlagSet
	address   *string
	name      *string
	phone     *string
	unit      *string
	note      *string
	lat       *float64
	lng       *float64
	isDefault *bool
}

func newAddressFlags(fs *flag.FlagSet) *addressFlags {
	return &addressFlags{
		fs:        fs,
		address:   fs.String("address", "", "Full street address (resolved from -lat/-lng when empty)"),
		name:      fs.String("name", "", "Recipient name"),
		phone:     fs.String("phone", "", "Recipient phone"),
		unit:      fs.String("unit", "", "Unit, floor or house number"),
		note:      fs.String("note", "", "Note for the rider"),
		lat:       fs.Float64("lat", 0, "Latitude"),
		lng:       fs.Float64("lng", 0, "Longitude"),
		isDefault: fs.Bool("default", false, "Make this the default address"),
	}
}

// apply copies the flags given on the command line into the form input.
func (f *addressFlags) apply(input *usecase.AddressInput) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "address":
			input.Address = *f.address
		case "name":
			input.Name = *f.name
		case "phone":
			input.Phone = *f.phone
		case "unit":
			input.Unit = *f.unit
		case "note":
			input.Note = *f.note
		case "lat":
			input.Latitude = *f.lat
		case "lng":
			input.Longitude = *f.lng
		case "default":
			input.IsDefault = *f.isDefault
		}
	})
}

func (f *addressFlags) coordinate() entity.Coordinate {
	return entity.Coordinate{Latitude: *f.lat, Longitude: *f.lng}
}

func addCommand() *command {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	fields := newAddressFlags(fs)

	return &command{
		flags: fs,
		usage: "Create an address",
		run: func(ctx context.Context, d *deps) error {
			screen := impl.NewScreen(ctx)
			defer screen.Close()

			form := impl.NewAddForm(screen, d.Addresses, fields.coordinate())
			if strings.TrimSpace(*fields.address) == "" {
				loc, err := pickLocation(ctx, d, fields.coordinate())
				if err != nil {
					return err
				}
				if err := form.SetLocation(*loc); err != nil {
					return err
				}
			}

			if err := form.Edit(fields.apply); err != nil {
				return err
			}
			if err := form.Submit(); err != nil {
				return err
			}

			saved := form.Saved()
			printf("Created address %s\n", saved.ID)

			return waitNavigation(ctx, d)
		},
	}
}

func editCommand() *command {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.String("id", "", "Address id")
	fields := newAddressFlags(fs)

	return &command{
		flags: fs,
		usage: "Update an address, optionally making it the default",
		run: func(ctx context.Context, d *deps) error {
			screen := impl.NewScreen(ctx)
			defer screen.Close()

			form := impl.NewEditForm(screen, d.Addresses, *id)
			if err := form.Load(); err != nil {
				return err
			}
			if err := form.Edit(fields.apply); err != nil {
				return err
			}
			if err := form.Submit(); err != nil {
				return err
			}

			result := form.UpdateResult()
			printf("Updated address %s\n", result.Address.ID)
			if result.DefaultRequested && !result.DefaultApplied {
				printf("Warning: the address was saved but could not be made the default: %v\n", result.DefaultErr)
			}

			return waitNavigation(ctx, d)
		},
	}
}

func deleteCommand() *command {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "Address id")
	yes := fs.Bool("yes", false, "Do not ask for confirmation")

	return &command{
		flags: fs,
		usage: "Delete an address after confirmation",
		run: func(ctx context.Context, d *deps) error {
			screen := impl.NewScreen(ctx)
			defer screen.Close()

			address, err := d.Addresses.GetAddress(ctx, *id)
			if err != nil {
				return err
			}

			confirm := promptConfirm(os.Stdin)
			if *yes {
				confirm = alwaysConfirm
			}

			deleted, err := impl.NewAddressList(screen, d.Addresses).Delete(address, confirm)
			if err != nil {
				return err
			}
			if !deleted {
				printf("Kept address %s\n", address.ID)

				return nil
			}

			printf("Deleted address %s\n", address.ID)

			return waitNavigation(ctx, d)
		},
	}
}

func selectCommand() *command {
	fs := flag.NewFlagSet("select", flag.ExitOnError)
	id := fs.String("id", "", "Address id")

	return &command{
		flags: fs,
		usage: "Use an address for the next order",
		run: func(ctx context.Context, d *deps) error {
			screen := impl.NewScreen(ctx)
			defer screen.Close()

			details, err := impl.NewAddressList(screen, d.Addresses).Select(*id)
			if err != nil {
				return err
			}

			return printJSON(details)
		},
	}
}

func runSelected(ctx context.Context, d *deps) error {
	details, err := d.Addresses.SelectedAddress(ctx)
	if err != nil {
		return err
	}

	return printJSON(details)
}

func pickCommand() *command {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude of the marker")
	lng := fs.Float64("lng", 0, "Longitude of the marker")

	return &command{
		flags: fs,
		usage: "Resolve a map position into an address",
		run: func(ctx context.Context, d *deps) error {
			loc, err := pickLocation(ctx, d, entity.Coordinate{Latitude: *lat, Longitude: *lng})
			if err != nil {
				return err
			}

			if err := printJSON(loc); err != nil {
				return err
			}

			if selected, err := d.Addresses.SelectedAddress(ctx); err == nil {
				meters := geo.Distance(loc.Coordinate().Point(), selected.Coordinate().Point())
				printf("%s from the selected delivery address\n", util.FormatDistance(meters))
			}

			return nil
		},
	}
}

func searchCommand() *command {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("q", "", "Text to search for")
	placeID := fs.String("place", "", "Resolve this place id instead of searching")

	return &command{
		flags: fs,
		usage: "Search places or resolve a place id",
		run: func(ctx context.Context, d *deps) error {
			if *placeID != "" {
				loc, err := resolvePlace(ctx, d, *placeID)
				if err != nil {
					return err
				}

				return printJSON(loc)
			}

			predictions, err := d.Locations.SearchPlaces(ctx, *query)
			if err != nil {
				return err
			}

			printPredictions(predictions)

			return nil
		},
	}
}

func qrCommand() *command {
	fs := flag.NewFlagSet("qr", flag.ExitOnError)
	out := fs.String("out", "delivery.png", "Output PNG file")

	return &command{
		flags: fs,
		usage: "Write the selected delivery location as a QR code",
		run: func(ctx context.Context, d *deps) error {
			details, err := d.Addresses.SelectedAddress(ctx)
			if err != nil {
				return err
			}

			png, err := d.QRCode.GenerateLocationQR(details)
			if err != nil {
				return err
			}

			if err := os.WriteFile(*out, png, 0o600); err != nil {
				return errors.Wrapf(err, "write %s", *out)
			}

			printf("Wrote %s (%s)\n", *out, util.FormatBytes(int64(len(png))))

			return nil
		},
	}
}
