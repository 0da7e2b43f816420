package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MukeshMurthy/E-commerce-organic-eats/models"
)

// GET /orders/invoice/:orderID
// Invoices exist only for delivered orders.
func DownloadInvoiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").
			First(&order, uint(orderID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			log.Error().Err(err).Msg("failed to load order for invoice")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
			return
		}

		if order.Status != models.OrderStatusDelivered {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice is only available for delivered orders"})
			return
		}

		var user models.User
		if err := db.First(&user, order.UserID).Error; err != nil {
			log.Error().Err(err).Msg("failed to load user for invoice")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
			return
		}

		pdf := buildInvoicePDF(order, user)

		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", order.ID))
		if err := pdf.Output(c.Writer); err != nil {
			log.Error().Err(err).Msg("failed to write invoice PDF")
		}
	}
}

func buildInvoicePDF(order models.Order, user models.User) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Organic Eats Pvt. Ltd.")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, "Fresh. Organic. Delivered.")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Order ID: %d", order.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date: "+order.OrderDate.Format("2006-01-02"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status: "+string(order.Status))
	pdf.Ln(10)

	pdf.Cell(0, 7, "Customer Name: "+user.Name)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Customer Email: "+user.Email)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, 8, "Product", "B", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var total float64
	for _, item := range order.Items {
		lineTotal := item.Price * float64(item.Quantity)
		total += lineTotal
		pdf.CellFormat(80, 8, item.Product.Name, "", 0, "", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, strconv.Itoa(item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", lineTotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total Amount: %.2f", total), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 8, "Thank you for shopping with Organic Eats!", "", 1, "C", false, 0, "")

	return pdf
}
