package invoice

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"julianmorley.ca/shop/storefront/pkg/models"
)

var ErrForbidden = errors.New("not allowed to access this invoice")

type OrderGetter interface {
	Get(ctx context.Context, id bson.ObjectID) (*models.Order, error)
}

// Service regenerates an invoice from the order record on every request;
// invoices are never stored as structured data.
type Service struct {
	orders OrderGetter
}

func NewService(orders OrderGetter) *Service {
	return &Service{orders: orders}
}

// Document is a fully rendered invoice ready for sink fan-out.
type Document struct {
	Filename string
	Bytes    []byte
}

// Render fetches the order, checks ownership and builds the PDF. The
// ownership check runs before a single document byte exists, so a Forbidden
// result never leaks partial content. orders.ErrOrderNotFound passes through
// untouched.
func (s *Service) Render(ctx context.Context, orderID bson.ObjectID, user *models.User) (*Document, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.User.UserID != user.ID {
		return nil, ErrForbidden
	}

	data, err := Build(order)
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename: Filename(orderID),
		Bytes:    data,
	}, nil
}

// Filename is deterministic per order.
func Filename(orderID bson.ObjectID) string {
	return "invoice-" + orderID.Hex() + ".pdf"
}

// Build renders the order into PDF bytes: title, rule, one row per line item,
// rule, bold total. The total is recomputed from the order's own line items
// rather than trusted from anywhere else.
func Build(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "U", 26)
	pdf.CellFormat(0, 14, "Invoice", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "-----------------------------", "", 1, "L", false, 0, "")

	for _, item := range order.Items {
		price := decimal.NewFromFloat(item.Product.Price)
		row := fmt.Sprintf("%s - %d x $%s", item.Product.Title, item.Quantity, price.String())
		pdf.CellFormat(0, 8, row, "", 1, "L", false, 0, "")
	}

	pdf.CellFormat(0, 8, "-------------------------", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, TotalLine(order), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Total sums quantity x unit price over the order's line items.
func Total(order *models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		price := decimal.NewFromFloat(item.Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalLine formats the bold total row, always two decimals.
func TotalLine(order *models.Order) string {
	return "Total: $" + Total(order).StringFixed(2)
}
