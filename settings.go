package woocommerce

import (
	"context"
	"net/http"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// SettingGroup is a group of store settings.
type SettingGroup struct {
	ID          *string  `json:"id,omitempty"`
	Label       *string  `json:"label,omitempty"`
	Description *string  `json:"description,omitempty"`
	ParentID    *string  `json:"parent_id,omitempty"`
	SubGroups   []string `json:"sub_groups,omitempty"`
}

// SettingOption is one option within a setting group. Value and Default
// stay untyped because the API returns strings, numbers, arrays and
// objects depending on the option type.
type SettingOption struct {
	ID          *string           `json:"id,omitempty"`
	Label       *string           `json:"label,omitempty"`
	Description *string           `json:"description,omitempty"`
	Value       any               `json:"value,omitempty"`
	Default     any               `json:"default,omitempty"`
	Tip         *string           `json:"tip,omitempty"`
	Placeholder *string           `json:"placeholder,omitempty"`
	Type        *string           `json:"type,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
	GroupID     *string           `json:"group_id,omitempty"`
}

// ListSettingGroups fetches all setting groups.
func (c *Client) ListSettingGroups(ctx context.Context, reqOpts ...RequestOption) ([]SettingGroup, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeSettingGroup, 3), nil
	}
	return do[[]SettingGroup](ctx, c, http.MethodGet, settingsPath, nil, nil)
}

// ListSettingOptions fetches the options of a setting group.
func (c *Client) ListSettingOptions(ctx context.Context, group string, reqOpts ...RequestOption) ([]SettingOption, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeSettingOption, 3), nil
	}
	return do[[]SettingOption](ctx, c, http.MethodGet, settingGroupPath(group), nil, nil)
}

// GetSettingOption fetches one option within a group.
func (c *Client) GetSettingOption(ctx context.Context, group, id string, reqOpts ...RequestOption) (*SettingOption, error) {
	if c.fakeMode(reqOpts) {
		o := fakeSettingOption()
		o.ID = ptr(id)
		return &o, nil
	}
	return do[*SettingOption](ctx, c, http.MethodGet, settingOptionPath(group, id), nil, nil)
}

// UpdateSettingOption updates the option identified by option.ID within a
// group.
func (c *Client) UpdateSettingOption(ctx context.Context, group string, option *SettingOption, reqOpts ...RequestOption) (*SettingOption, error) {
	if c.fakeMode(reqOpts) {
		o := fakeSettingOption()
		return &o, nil
	}
	if option == nil || option.ID == nil {
		return nil, ErrMissingID
	}
	return do[*SettingOption](ctx, c, http.MethodPut, settingOptionPath(group, *option.ID), nil, option)
}

// BatchUpdateSettingOptions updates several options of a group in one
// call.
func (c *Client) BatchUpdateSettingOptions(ctx context.Context, group string, batch *Batch[SettingOption], reqOpts ...RequestOption) (*BatchResult[SettingOption], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeSettingOption), nil
	}
	return do[*BatchResult[SettingOption]](ctx, c, http.MethodPost, settingOptionsBatchPath(group), nil, batch)
}

func fakeSettingGroup() SettingGroup {
	return SettingGroup{
		ID:          ptr(faker.Slug()),
		Label:       ptr(faker.Word()),
		Description: ptr(faker.Sentence()),
		ParentID:    ptr(""),
	}
}

func fakeSettingOption() SettingOption {
	return SettingOption{
		ID:          ptr(faker.Slug()),
		Label:       ptr(faker.Word()),
		Description: ptr(faker.Sentence()),
		Value:       faker.Word(),
		Default:     faker.Word(),
		Tip:         ptr(faker.Sentence()),
		Type:        ptr(faker.Item("text", "select", "checkbox", "number")),
	}
}
