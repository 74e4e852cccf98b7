package controllers

import (
	"log"
	"math"
	"strconv"
	"strings"

	"procurement-backend/config"
	"procurement-backend/models"
	"procurement-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// OrderController serves the purchase order ledger. Every request
// goes straight to the row store; nothing is cached in between, so
// concurrent creates for the same product can both read a snapshot
// that misses the other's append.
type OrderController struct {
	store   storage.RowStore
	backend string
	echo    bool
}

func NewOrderController(store storage.RowStore, cfg config.Config) *OrderController {
	return &OrderController{
		store:   store,
		backend: cfg.Backend,
		echo:    cfg.EchoOrderFields,
	}
}

// CreateOrder appends one order to the ledger. The price change
// against the most recent prior order for the same product is
// computed here, from the ledger as it stands right now, and frozen
// into the appended row.
func (ctl *OrderController) CreateOrder(c *fiber.Ctx) error {
	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	records, err := ctl.store.FetchAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to add order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}

	latestPriceChange := "-"
	if prev, ok := previousPrice(records, req.ProductName); ok {
		if delta := *req.Price - prev; delta != 0 {
			latestPriceChange = formatPriceChange(delta)
		}
	}

	row := []interface{}{
		req.ProductName,
		req.Supplier,
		*req.Price,
		*req.Quantity,
		req.PurchaseDate,
		req.StaffInCharge,
		req.Approver,
		latestPriceChange,
	}
	if err := ctl.store.Append(c.Context(), row); err != nil {
		log.Printf("[ERROR] Failed to add order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}

	if ctl.echo {
		return c.JSON(models.OrderEchoResponse{
			Message:           "Order added successfully",
			ProductName:       req.ProductName,
			Supplier:          req.Supplier,
			Price:             *req.Price,
			Quantity:          *req.Quantity,
			PurchaseDate:      req.PurchaseDate,
			StaffInCharge:     req.StaffInCharge,
			Approver:          req.Approver,
			LatestPriceChange: latestPriceChange,
		})
	}
	return c.JSON(models.OrderResponse{
		Message:           "Order added successfully",
		LatestPriceChange: latestPriceChange,
	})
}

// GetOrderHistory returns every ledger row in store order. A row that
// no longer maps onto the order shape is dropped, so one malformed
// historical row never fails the whole listing.
func (ctl *OrderController) GetOrderHistory(c *fiber.Ctx) error {
	records, err := ctl.store.FetchAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Failed to fetch order history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}

	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		order, err := models.OrderFromRecord(rec)
		if err != nil {
			log.Printf("[ERROR] Failed to parse row: %v, error: %v", rec, err)
			continue
		}
		orders = append(orders, order)
	}
	return c.JSON(models.OrderHistoryResponse{Orders: orders})
}

// HealthCheck probes the active backend.
func (ctl *OrderController) HealthCheck(c *fiber.Ctx) error {
	connected := ctl.store.Ping(c.Context()) == nil
	return c.JSON(fiber.Map{
		"status":          "ok",
		"backend":         ctl.backend,
		"store_connected": connected,
	})
}

// previousPrice scans the fetched rows for the most recent prior
// order of the same product and returns its price. Matching is
// case-insensitive on the trimmed product name, and the last matching
// row in store order wins. A matching row whose price cell does not
// parse contributes nothing; the scan keeps going.
func previousPrice(records []models.Record, productName string) (float64, bool) {
	name := normalizeProduct(productName)
	var prev float64
	found := false
	for _, rec := range records {
		if normalizeProduct(rec.String("product_name")) != name {
			continue
		}
		price, err := rec.Float("price")
		if err != nil {
			continue
		}
		prev = price
		found = true
	}
	return prev, found
}

func normalizeProduct(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// formatPriceChange renders a non-zero delta. Whole deltas keep one
// decimal ("3.0"), everything else uses the shortest form that round
// trips ("2.5").
func formatPriceChange(delta float64) string {
	if delta == math.Trunc(delta) {
		return strconv.FormatFloat(delta, 'f', 1, 64)
	}
	return strconv.FormatFloat(delta, 'f', -1, 64)
}
