package dto

import (
	"testing"
	"time"

	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestValidDeliveryDate(t *testing.T) {
	assert.True(t, ValidDeliveryDate("2026-09-01"))
	assert.False(t, ValidDeliveryDate("01.09.2026"))
	assert.False(t, ValidDeliveryDate("2026-13-01"))
	assert.False(t, ValidDeliveryDate(""))
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := CreateOrderRequest{
		CustomerID:   "c1",
		DeliveryDate: "2026-09-01",
		Lines:        []OrderLineRequest{{ProductID: "p1", Quantity: 5}},
	}

	tests := []struct {
		name    string
		mutate  func(*CreateOrderRequest)
		wantErr error
	}{
		{"valid request", func(r *CreateOrderRequest) {}, nil},
		{"bad date", func(r *CreateOrderRequest) { r.DeliveryDate = "tomorrow" }, ErrInvalidDeliveryDate},
		{"no lines", func(r *CreateOrderRequest) { r.Lines = nil }, ErrEmptyLines},
		{"missing product", func(r *CreateOrderRequest) { r.Lines[0].ProductID = "" }, ErrMissingProductRef},
		{"zero quantity", func(r *CreateOrderRequest) { r.Lines[0].Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(r *CreateOrderRequest) { r.Lines[0].Quantity = -2 }, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Lines = []OrderLineRequest{valid.Lines[0]}
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateLineStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateLineStatusRequest{Status: model.PackingPacked}).Validate())
	assert.ErrorIs(t, (&UpdateLineStatusRequest{Status: "shipped"}).Validate(), ErrInvalidPackingStatus)
}

func TestUpdateSettingsRequest_ToSettings(t *testing.T) {
	show := false
	req := UpdateSettingsRequest{
		ShowDate:       &show,
		Theme:          "dark",
		CompactTopN:    4,
		RefreshSeconds: 15,
	}

	s := req.ToSettings()
	assert.Equal(t, &show, s.ShowDate)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, 4, s.CompactTopN)
	assert.Equal(t, 15*time.Second, s.RefreshInterval)

	empty := (&UpdateSettingsRequest{}).ToSettings()
	assert.Zero(t, empty.RefreshInterval)
}

func TestCreateRequests_IsActive(t *testing.T) {
	f := false
	assert.True(t, (&CreateCustomerRequest{}).IsActive())
	assert.False(t, (&CreateCustomerRequest{Active: &f}).IsActive())
	assert.True(t, (&CreateProductRequest{}).IsActive())
	assert.False(t, (&CreateProductRequest{Active: &f}).IsActive())
}
