package models

import "encoding/json"

// Order statuses. An order created through the API has no status until
// it is updated.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

// ValidStatuses lists the accepted order statuses in lifecycle order.
var ValidStatuses = []string{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// IsValidStatus reports whether status is one of ValidStatuses.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID           string         `json:"id" yaml:"id"`
	DeliverTo    string         `json:"deliverTo" yaml:"deliverTo"`
	MobileNumber string         `json:"mobileNumber" yaml:"mobileNumber"`
	Dishes       []DishLineItem `json:"dishes" yaml:"dishes"`
	Status       string         `json:"status,omitempty" yaml:"status,omitempty"`
}

func (o Order) GetID() string {
	return o.ID
}

// DishLineItem is a dish reference inside an order together with the
// ordered quantity. The dish fields are a snapshot of what the client sent.
// Keys without a typed field, and known keys whose value has another type
// or is empty, are kept in Extra so the item round-trips unchanged.
type DishLineItem struct {
	ID          string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string  `json:"name,omitempty" yaml:"name,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Price       float64 `json:"price,omitempty" yaml:"price,omitempty"`
	ImageURL    string  `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`

	Extra map[string]interface{} `json:"-" yaml:",inline"`
}

// LineItemFromMap builds a line item from a decoded JSON object.
func LineItemFromMap(fields map[string]interface{}) DishLineItem {
	var item DishLineItem
	for key, value := range fields {
		if item.setField(key, value) {
			continue
		}
		if item.Extra == nil {
			item.Extra = make(map[string]interface{})
		}
		item.Extra[key] = value
	}
	return item
}

func (d *DishLineItem) setField(key string, value interface{}) bool {
	switch key {
	case "id", "name", "description", "image_url":
		s, ok := value.(string)
		if !ok || s == "" {
			return false
		}
		switch key {
		case "id":
			d.ID = s
		case "name":
			d.Name = s
		case "description":
			d.Description = s
		default:
			d.ImageURL = s
		}
		return true
	case "price", "quantity":
		n, ok := value.(float64)
		if !ok {
			return false
		}
		if key == "quantity" {
			d.Quantity = n
			return true
		}
		if n == 0 {
			return false
		}
		d.Price = n
		return true
	}
	return false
}

func (d DishLineItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 6+len(d.Extra))
	if d.ID != "" {
		out["id"] = d.ID
	}
	if d.Name != "" {
		out["name"] = d.Name
	}
	if d.Description != "" {
		out["description"] = d.Description
	}
	if d.Price != 0 {
		out["price"] = d.Price
	}
	if d.ImageURL != "" {
		out["image_url"] = d.ImageURL
	}
	out["quantity"] = d.Quantity
	for key, value := range d.Extra {
		out[key] = value
	}
	return json.Marshal(out)
}

func (d *DishLineItem) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*d = LineItemFromMap(fields)
	return nil
}
