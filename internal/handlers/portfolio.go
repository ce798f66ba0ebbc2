package handlers

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"stockwatch-go-api/internal/models"
	"stockwatch-go-api/internal/services"
)

type PortfolioHandler struct {
	portfolio *services.PortfolioService
	paths     *PathStore
}

func NewPortfolioHandler(portfolio *services.PortfolioService, paths *PathStore) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio, paths: paths}
}

// SetExcelPath handles POST /api/set-excel-path. The path must exist on the
// serving filesystem before it is accepted.
func (h *PortfolioHandler) SetExcelPath(c *fiber.Ctx) error {
	var req models.SetPathRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Path) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "File path is required",
		})
	}

	if _, err := os.Stat(req.Path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "File does not exist",
		})
	}

	h.paths.Set(req.Path)
	return c.JSON(models.SetPathResponse{
		Message: "Excel file path set successfully",
		Path:    req.Path,
	})
}

// PortfolioData handles GET /api/portfolio-data, the declared-only report.
func (h *PortfolioHandler) PortfolioData(c *fiber.Ctx) error {
	path, ok := h.paths.Get()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Excel file path not set. Use /api/set-excel-path first.",
		})
	}

	resp, err := h.portfolio.DeclaredPositions(path)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Error reading Excel file: " + err.Error(),
		})
	}
	return c.JSON(resp)
}

// PortfolioWithLivePrices handles GET /api/portfolio-with-live-prices, the
// full reconciliation.
func (h *PortfolioHandler) PortfolioWithLivePrices(c *fiber.Ctx) error {
	path, ok := h.paths.Get()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Excel file path not set. Use /api/set-excel-path first.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	resp, err := h.portfolio.Reconcile(ctx, path)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Error processing portfolio data: " + err.Error(),
		})
	}
	return c.JSON(resp)
}
