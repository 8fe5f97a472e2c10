package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"kedai/internal/domain/entity"
	"kedai/internal/usecase/impl"
)

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func printAddressList(view *impl.AddressListView, displayPhone func(string) string) {
	if len(view.Addresses) == 0 {
		printf("No addresses yet\n")

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tNAME\tPHONE\tADDRESS")
	for _, a := range view.Addresses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", addressMarker(a, view.Selected), a.ID, a.Name, displayPhone(a.Phone), a.Address)
	}
	w.Flush()
}

// addressMarker flags the selected address with '>' and the default one with '*'.
func addressMarker(a *entity.Address, selected *entity.DeliveryAddressDetails) string {
	var marker strings.Builder
	if selected != nil && selected.AddressID == a.ID {
		marker.WriteString(">")
	}
	if a.IsDefault {
		marker.WriteString("*")
	}

	return marker.String()
}

func printPredictions(predictions []entity.PlacePrediction) {
	if len(predictions) == 0 {
		printf("No places found\n")

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLACE ID\tDESCRIPTION")
	for _, p := range predictions {
		fmt.Fprintf(w, "%s\t%s\n", p.PlaceID, p.Description)
	}
	w.Flush()
}

// promptConfirm asks on stdout and reads a yes/no answer from in.
func promptConfirm(in io.Reader) impl.ConfirmFunc {
	reader := bufio.NewReader(in)

	return func(ctx context.Context, prompt string) bool {
		if ctx.Err() != nil {
			return false
		}

		printf("%s [y/N] ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}

func alwaysConfirm(context.Context, string) bool {
	return true
}
