package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// ShippingZone groups locations that share shipping methods.
type ShippingZone struct {
	ID    *int64  `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// ShippingLocationType says what a zone location code refers to.
type ShippingLocationType string

const (
	ShippingLocationPostcode  ShippingLocationType = "postcode"
	ShippingLocationState     ShippingLocationType = "state"
	ShippingLocationCountry   ShippingLocationType = "country"
	ShippingLocationContinent ShippingLocationType = "continent"
)

func shippingLocationTypeFromString(s string) ShippingLocationType {
	switch ShippingLocationType(s) {
	case ShippingLocationPostcode, ShippingLocationState, ShippingLocationCountry, ShippingLocationContinent:
		return ShippingLocationType(s)
	}
	return ShippingLocationCountry
}

func (t *ShippingLocationType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = shippingLocationTypeFromString(raw)
	return nil
}

// ShippingZoneLocation is one location covered by a zone.
type ShippingZoneLocation struct {
	Code *string              `json:"code,omitempty"`
	Type ShippingLocationType `json:"type,omitempty"`
}

// ShippingZoneMethod is a shipping method instance enabled on a zone.
type ShippingZoneMethod struct {
	InstanceID        *int64                   `json:"instance_id,omitempty"`
	Title             *string                  `json:"title,omitempty"`
	Order             *int                     `json:"order,omitempty"`
	Enabled           *bool                    `json:"enabled,omitempty"`
	MethodID          *string                  `json:"method_id,omitempty"`
	MethodTitle       *string                  `json:"method_title,omitempty"`
	MethodDescription *string                  `json:"method_description,omitempty"`
	Settings          map[string]SettingOption `json:"settings,omitempty"`
}

// ShippingMethod is a shipping method type known to the store.
type ShippingMethod struct {
	ID          *string `json:"id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListShippingZones fetches all shipping zones.
func (c *Client) ListShippingZones(ctx context.Context, reqOpts ...RequestOption) ([]ShippingZone, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeShippingZone, 3), nil
	}
	return do[[]ShippingZone](ctx, c, http.MethodGet, shippingZonesPath, nil, nil)
}

// GetShippingZone fetches a single zone by id.
func (c *Client) GetShippingZone(ctx context.Context, id int64, reqOpts ...RequestOption) (*ShippingZone, error) {
	if c.fakeMode(reqOpts) {
		z := fakeShippingZone()
		z.ID = ptr(id)
		return &z, nil
	}
	return do[*ShippingZone](ctx, c, http.MethodGet, shippingZonePath(id), nil, nil)
}

// CreateShippingZone creates a zone.
func (c *Client) CreateShippingZone(ctx context.Context, zone *ShippingZone, reqOpts ...RequestOption) (*ShippingZone, error) {
	if c.fakeMode(reqOpts) {
		z := fakeShippingZone()
		return &z, nil
	}
	return do[*ShippingZone](ctx, c, http.MethodPost, shippingZonesPath, nil, zone)
}

// UpdateShippingZone updates the zone identified by zone.ID.
func (c *Client) UpdateShippingZone(ctx context.Context, zone *ShippingZone, reqOpts ...RequestOption) (*ShippingZone, error) {
	if c.fakeMode(reqOpts) {
		z := fakeShippingZone()
		return &z, nil
	}
	if zone == nil || zone.ID == nil {
		return nil, ErrMissingID
	}
	return do[*ShippingZone](ctx, c, http.MethodPut, shippingZonePath(*zone.ID), nil, zone)
}

// DeleteShippingZone deletes a zone. Zones cannot be trashed, so the API
// requires force.
func (c *Client) DeleteShippingZone(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*ShippingZone, error) {
	if c.fakeMode(reqOpts) {
		z := fakeShippingZone()
		z.ID = ptr(id)
		return &z, nil
	}
	return do[*ShippingZone](ctx, c, http.MethodDelete, shippingZonePath(id), forceQuery(force), nil)
}

// ListShippingZoneLocations fetches the locations of a zone.
func (c *Client) ListShippingZoneLocations(ctx context.Context, zoneID int64, reqOpts ...RequestOption) ([]ShippingZoneLocation, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeShippingZoneLocation, 3), nil
	}
	return do[[]ShippingZoneLocation](ctx, c, http.MethodGet, shippingZoneLocationsPath(zoneID), nil, nil)
}

// UpdateShippingZoneLocations replaces the locations of a zone.
func (c *Client) UpdateShippingZoneLocations(ctx context.Context, zoneID int64, locations []ShippingZoneLocation, reqOpts ...RequestOption) ([]ShippingZoneLocation, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeShippingZoneLocation, len(locations)), nil
	}
	return do[[]ShippingZoneLocation](ctx, c, http.MethodPut, shippingZoneLocationsPath(zoneID), nil, locations)
}

// ListShippingZoneMethods fetches the method instances enabled on a zone.
func (c *Client) ListShippingZoneMethods(ctx context.Context, zoneID int64, reqOpts ...RequestOption) ([]ShippingZoneMethod, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeShippingZoneMethod, 3), nil
	}
	return do[[]ShippingZoneMethod](ctx, c, http.MethodGet, shippingZoneMethodsPath(zoneID), nil, nil)
}

// GetShippingZoneMethod fetches one method instance of a zone.
func (c *Client) GetShippingZoneMethod(ctx context.Context, zoneID, instanceID int64, reqOpts ...RequestOption) (*ShippingZoneMethod, error) {
	if c.fakeMode(reqOpts) {
		m := fakeShippingZoneMethod()
		m.InstanceID = ptr(instanceID)
		return &m, nil
	}
	return do[*ShippingZoneMethod](ctx, c, http.MethodGet, shippingZoneMethodPath(zoneID, instanceID), nil, nil)
}

// IncludeShippingZoneMethod enables a shipping method type on a zone and
// returns the created instance.
func (c *Client) IncludeShippingZoneMethod(ctx context.Context, zoneID int64, methodID string, reqOpts ...RequestOption) (*ShippingZoneMethod, error) {
	if c.fakeMode(reqOpts) {
		m := fakeShippingZoneMethod()
		m.MethodID = ptr(methodID)
		return &m, nil
	}
	body := map[string]string{"method_id": methodID}
	return do[*ShippingZoneMethod](ctx, c, http.MethodPost, shippingZoneMethodsPath(zoneID), nil, body)
}

// UpdateShippingZoneMethod updates the method instance identified by
// method.InstanceID.
func (c *Client) UpdateShippingZoneMethod(ctx context.Context, zoneID int64, method *ShippingZoneMethod, reqOpts ...RequestOption) (*ShippingZoneMethod, error) {
	if c.fakeMode(reqOpts) {
		m := fakeShippingZoneMethod()
		return &m, nil
	}
	if method == nil || method.InstanceID == nil {
		return nil, ErrMissingID
	}
	return do[*ShippingZoneMethod](ctx, c, http.MethodPut, shippingZoneMethodPath(zoneID, *method.InstanceID), nil, method)
}

// DeleteShippingZoneMethod removes a method instance from a zone.
func (c *Client) DeleteShippingZoneMethod(ctx context.Context, zoneID, instanceID int64, force bool, reqOpts ...RequestOption) (*ShippingZoneMethod, error) {
	if c.fakeMode(reqOpts) {
		m := fakeShippingZoneMethod()
		m.InstanceID = ptr(instanceID)
		return &m, nil
	}
	return do[*ShippingZoneMethod](ctx, c, http.MethodDelete, shippingZoneMethodPath(zoneID, instanceID), forceQuery(force), nil)
}

// ListShippingMethods fetches the shipping method types the store knows.
func (c *Client) ListShippingMethods(ctx context.Context, reqOpts ...RequestOption) ([]ShippingMethod, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeShippingMethod, 3), nil
	}
	return do[[]ShippingMethod](ctx, c, http.MethodGet, shippingMethodsPath, nil, nil)
}

// GetShippingMethod fetches one shipping method type by id.
func (c *Client) GetShippingMethod(ctx context.Context, id string, reqOpts ...RequestOption) (*ShippingMethod, error) {
	if c.fakeMode(reqOpts) {
		m := fakeShippingMethod()
		m.ID = ptr(id)
		return &m, nil
	}
	return do[*ShippingMethod](ctx, c, http.MethodGet, shippingMethodPath(id), nil, nil)
}

func fakeShippingZone() ShippingZone {
	return ShippingZone{
		ID:    ptr(faker.ID()),
		Name:  ptr(faker.Word()),
		Order: ptr(faker.Int(0, 10)),
	}
}

func fakeShippingZoneLocation() ShippingZoneLocation {
	return ShippingZoneLocation{
		Code: ptr(faker.CountryCode()),
		Type: faker.Item(ShippingLocationPostcode, ShippingLocationState, ShippingLocationCountry, ShippingLocationContinent),
	}
}

func fakeShippingZoneMethod() ShippingZoneMethod {
	return ShippingZoneMethod{
		InstanceID:        ptr(faker.ID()),
		Title:             ptr(faker.Word()),
		Order:             ptr(faker.Int(0, 10)),
		Enabled:           ptr(faker.Bool()),
		MethodID:          ptr(faker.Item("flat_rate", "free_shipping", "local_pickup")),
		MethodTitle:       ptr(faker.Word()),
		MethodDescription: ptr(faker.Sentence()),
	}
}

func fakeShippingMethod() ShippingMethod {
	return ShippingMethod{
		ID:          ptr(faker.Item("flat_rate", "free_shipping", "local_pickup")),
		Title:       ptr(faker.Word()),
		Description: ptr(faker.Sentence()),
	}
}
