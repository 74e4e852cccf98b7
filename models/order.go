package models

import (
	"fmt"
	"strings"
)

// Order is one row of the purchase order ledger. Rows are append-only:
// once written they are never updated or deleted, and the price change
// recorded at insertion time is never recomputed.
type Order struct {
	ID                uint    `json:"-" gorm:"primaryKey"`
	ProductName       string  `json:"product_name"`
	Supplier          string  `json:"supplier"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	PurchaseDate      string  `json:"purchase_date"`
	StaffInCharge     string  `json:"staff_in_charge"`
	Approver          string  `json:"approver"`
	LatestPriceChange string  `json:"latest_price_change"`
}

// OrderColumns is the fixed column order every backend writes and
// reads a ledger row in.
var OrderColumns = []string{
	"product_name",
	"supplier",
	"price",
	"quantity",
	"purchase_date",
	"staff_in_charge",
	"approver",
	"latest_price_change",
}

// OrderFromRecord builds an Order out of one raw store row. A missing
// required field or an unparsable price/quantity fails the whole row;
// latest_price_change falls back to the "-" sentinel when the column
// is absent.
func OrderFromRecord(rec Record) (Order, error) {
	for _, field := range []string{"product_name", "supplier", "purchase_date", "staff_in_charge", "approver"} {
		if !rec.Has(field) {
			return Order{}, fmt.Errorf("field %q is missing", field)
		}
	}

	price, err := rec.Float("price")
	if err != nil {
		return Order{}, err
	}
	quantity, err := rec.Int("quantity")
	if err != nil {
		return Order{}, err
	}

	change := "-"
	if rec.Has("latest_price_change") {
		change = rec.String("latest_price_change")
	}

	return Order{
		ProductName:       rec.String("product_name"),
		Supplier:          rec.String("supplier"),
		Price:             price,
		Quantity:          quantity,
		PurchaseDate:      rec.String("purchase_date"),
		StaffInCharge:     rec.String("staff_in_charge"),
		Approver:          rec.String("approver"),
		LatestPriceChange: change,
	}, nil
}

// Record returns the order in its raw field→value form.
func (o Order) Record() Record {
	return Record{
		"product_name":        o.ProductName,
		"supplier":            o.Supplier,
		"price":               o.Price,
		"quantity":            o.Quantity,
		"purchase_date":       o.PurchaseDate,
		"staff_in_charge":     o.StaffInCharge,
		"approver":            o.Approver,
		"latest_price_change": o.LatestPriceChange,
	}
}

// OrderRequest is the body of POST /orders. Price and quantity are
// pointers so a submitted zero can be told apart from a missing field.
type OrderRequest struct {
	ProductName   string   `json:"product_name"`
	Supplier      string   `json:"supplier"`
	Price         *float64 `json:"price"`
	Quantity      *int     `json:"quantity"`
	PurchaseDate  string   `json:"purchase_date"`
	StaffInCharge string   `json:"staff_in_charge"`
	Approver      string   `json:"approver"`
}

// Validate checks that every required field was submitted.
func (r OrderRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.ProductName) == "" {
		missing = append(missing, "product_name")
	}
	if strings.TrimSpace(r.Supplier) == "" {
		missing = append(missing, "supplier")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if strings.TrimSpace(r.PurchaseDate) == "" {
		missing = append(missing, "purchase_date")
	}
	if strings.TrimSpace(r.StaffInCharge) == "" {
		missing = append(missing, "staff_in_charge")
	}
	if strings.TrimSpace(r.Approver) == "" {
		missing = append(missing, "approver")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// OrderResponse confirms a created order.
type OrderResponse struct {
	Message           string `json:"message"`
	LatestPriceChange string `json:"latest_price_change"`
}

// OrderEchoResponse is the richer confirmation that repeats the
// submitted fields back to the caller, for consumers that only want
// to surface a subset of them.
type OrderEchoResponse struct {
	Message           string  `json:"message"`
	ProductName       string  `json:"product_name"`
	Supplier          string  `json:"supplier"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	PurchaseDate      string  `json:"purchase_date"`
	StaffInCharge     string  `json:"staff_in_charge"`
	Approver          string  `json:"approver"`
	LatestPriceChange string  `json:"latest_price_change"`
}

// OrderHistoryResponse is the body of GET /orders.
type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
}
