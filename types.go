package woocommerce

import (
	"bytes"
	"strings"
	"time"
)

// dateTimeLayout is the zoneless layout WooCommerce uses for date fields.
const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime wraps time.Time with the WooCommerce wire format. Decoding is
// tolerant: null, empty or unparsable input yields the zero value instead
// of an error.
type DateTime struct {
	time.Time
}

// NewDateTime builds a DateTime truncated to second precision, which is
// all the wire format can carry.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC().Truncate(time.Second)}
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{dateTimeLayout, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.Time = time.Time{}
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.UTC().Format(dateTimeLayout) + `"`), nil
}

// MetaData is the generic key/value metadata record attached to most
// resources. Value keeps whatever JSON the store returns.
type MetaData struct {
	ID    *int64  `json:"id,omitempty"`
	Key   *string `json:"key,omitempty"`
	Value any     `json:"value,omitempty"`
}

// Batch is the request envelope for /batch endpoints. Keys are omitted
// entirely when their slice is empty; sending an empty list and omitting
// it mean different things to the API.
type Batch[T any] struct {
	Create []T     `json:"create,omitempty"`
	Update []T     `json:"update,omitempty"`
	Delete []int64 `json:"delete,omitempty"`
}

// BatchResult mirrors Batch on the response side: the delete key carries
// the deleted entities as the store echoed them.
type BatchResult[T any] struct {
	Create []T `json:"create,omitempty"`
	Update []T `json:"update,omitempty"`
	Delete []T `json:"delete,omitempty"`
}

// ptr is a convenience for the pointer-typed optional fields used
// throughout the models.
func ptr[T any](v T) *T { return &v }
