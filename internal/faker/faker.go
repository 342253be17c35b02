// Package faker generates the plausible random values used when the
// client runs in synthetic-data mode. Output is deterministic in type and
// shape only, never in value; nothing here is seeded.
package faker

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// ID returns a positive resource identifier.
func ID() int64 { return int64(gofakeit.Number(1, 99999)) }

// Int returns an integer in [min, max].
func Int(min, max int) int { return gofakeit.Number(min, max) }

// Price returns a monetary amount formatted the way WooCommerce puts it
// on the wire: a two-decimal string.
func Price() string {
	return strconv.FormatFloat(gofakeit.Price(1, 500), 'f', 2, 64)
}

// Percent returns a tax-rate style percentage string.
func Percent() string {
	return strconv.FormatFloat(gofakeit.Price(0, 30), 'f', 4, 64)
}

func Word() string     { return gofakeit.Word() }
func Sentence() string { return gofakeit.Sentence(8) }
func Paragraph() string {
	return gofakeit.Paragraph(1, 3, 10, " ")
}

func URL() string       { return gofakeit.URL() }
func Email() string     { return gofakeit.Email() }
func Username() string  { return gofakeit.Username() }
func FirstName() string { return gofakeit.FirstName() }
func LastName() string  { return gofakeit.LastName() }
func Company() string   { return gofakeit.Company() }
func Phone() string     { return gofakeit.Phone() }
func City() string      { return gofakeit.City() }
func Street() string    { return gofakeit.Street() }
func Zip() string       { return gofakeit.Zip() }
func Bool() bool        { return gofakeit.Bool() }

// PastDate returns a time in the recent past, truncated to the second
// precision the wire format carries.
func PastDate() time.Time {
	return gofakeit.PastDate().UTC().Truncate(time.Second)
}

func Slug() string { return gofakeit.Word() + "-" + gofakeit.Word() }

func CountryCode() string  { return gofakeit.CountryAbr() }
func StateCode() string    { return gofakeit.StateAbr() }
func CurrencyCode() string { return gofakeit.CurrencyShort() }
func UserAgent() string    { return gofakeit.UserAgent() }
func IPv4() string         { return gofakeit.IPv4Address() }

// Item picks one of the given values.
func Item[T any](items ...T) T {
	return items[gofakeit.Number(0, len(items)-1)]
}

// List builds a short list (one to five elements) with the factory.
func List[T any](factory func() T) []T {
	return ListN(factory, gofakeit.Number(1, 5))
}

// ListN builds exactly n elements with the factory.
func ListN[T any](factory func() T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = factory()
	}
	return out
}
