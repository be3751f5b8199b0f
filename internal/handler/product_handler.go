package handler

import (
	"strconv"

	"go-inventory-web/internal/model"
	"go-inventory-web/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgSaveFailed   = "Error saving product"
	msgDeleteFailed = "Error deleting product"
	msgImportFailed = "Error importing file"
)

type ProductHandler struct {
	inventory service.InventoryService
	log       *logrus.Logger
}

func NewProductHandler(inventory service.InventoryService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{inventory: inventory, log: log}
}

// Index renders the product list page: header actions, low-stock banner,
// optional form overlay and the card grid in fetch order.
// Query params: new=1 (create form), edit=<id> (edit form), order=<id>
// (order form), q=<name> (search), category=<c> (category filter).
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	data := listPageData(c, h.inventory, h.log)
	return c.Render("index", data)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var form model.ProductFormData
	if err := c.BodyParser(&form); err != nil {
		return h.renderFormError(c, nil, form)
	}

	if err := h.inventory.Create(c.UserContext(), form); err != nil {
		h.log.WithError(err).Error("Product create failed")
		return h.renderFormError(c, nil, form)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var form model.ProductFormData
	if err := c.BodyParser(&form); err != nil {
		return h.renderFormError(c, h.editTarget(int64(id)), form)
	}

	if err := h.inventory.Update(c.UserContext(), int64(id), form); err != nil {
		h.log.WithError(err).Error("Product update failed")
		return h.renderFormError(c, h.editTarget(int64(id)), form)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := h.inventory.Delete(c.UserContext(), int64(id)); err != nil {
		h.log.WithError(err).Error("Product delete failed")
		data := listPageData(c, h.inventory, h.log)
		data["PageError"] = msgDeleteFailed
		return c.Status(fiber.StatusBadGateway).Render("index", data)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// Import uploads the selected CSV file and renders the result summary on the
// list page. Submitting without a file is a no-op.
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil || fileHeader.Size == 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.WithError(err).Error("CSV file open failed")
		return h.renderImportError(c)
	}
	defer file.Close()

	result, err := h.inventory.Import(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		h.log.WithError(err).Error("CSV import failed")
		return h.renderImportError(c)
	}

	data := listPageData(c, h.inventory, h.log)
	data["ImportResult"] = result
	return c.Render("index", data)
}

func (h *ProductHandler) renderFormError(c *fiber.Ctx, edit *model.Product, draft model.ProductFormData) error {
	data := listPageData(c, h.inventory, h.log)
	data["ShowForm"] = true
	data["EditProduct"] = edit
	data["FormDraft"] = draft
	data["FormError"] = msgSaveFailed
	return c.Status(fiber.StatusBadRequest).Render("index", data)
}

func (h *ProductHandler) renderImportError(c *fiber.Ctx) error {
	data := listPageData(c, h.inventory, h.log)
	data["ImportError"] = msgImportFailed
	return c.Status(fiber.StatusBadGateway).Render("index", data)
}

func (h *ProductHandler) editTarget(id int64) *model.Product {
	if p, ok := h.inventory.ProductByID(id); ok {
		return p
	}
	return nil
}

// listPageData assembles everything the list page renders. Each fetch fails
// soft: a product fetch error leaves the grid empty, a low-stock or counter
// fetch error just drops that fragment. No failure here takes down the page.
func listPageData(c *fiber.Ctx, inventory service.InventoryService, log *logrus.Logger) fiber.Map {
	ctx := c.UserContext()

	var products []model.Product
	switch {
	case c.Query("q") != "":
		found, err := inventory.Search(ctx, c.Query("q"))
		if err != nil {
			log.WithError(err).Error("Product search failed")
		}
		products = found
	case c.Query("category") != "":
		found, err := inventory.ByCategory(ctx, c.Query("category"))
		if err != nil {
			log.WithError(err).Error("Category filter failed")
		}
		products = found
	default:
		if err := inventory.EnsureLoaded(ctx); err != nil {
			log.WithError(err).Error("Product fetch failed")
		}
		products = inventory.Products()
	}

	// The banner fetches independently of the grid; its staleness window is
	// accepted behavior.
	lowStock, err := inventory.LowStock(ctx)
	if err != nil {
		log.WithError(err).Warn("Low-stock fetch failed")
		lowStock = nil
	}

	opCount := ""
	if count, err := inventory.OperationCount(ctx); err != nil {
		log.WithError(err).Warn("Operation counter fetch failed")
	} else {
		opCount = strconv.Itoa(count)
	}

	data := fiber.Map{
		"Products":      products,
		"LowStock":      lowStock,
		"ShowForm":      false,
		"EditProduct":   (*model.Product)(nil),
		"FormDraft":     model.ProductFormData{},
		"FormError":     "",
		"OrderProduct":  (*model.Product)(nil),
		"OrderQuantity": 1,
		"OrderTotal":    0.0,
		"OrderError":    "",
		"ImportResult":  (*model.CsvImportResult)(nil),
		"ImportError":   "",
		"PageError":     "",
		"Query":         c.Query("q"),
		"Category":      c.Query("category"),
		"OpCount":       opCount,
	}

	if c.Query("new") == "1" {
		data["ShowForm"] = true
	} else if editID := int64(c.QueryInt("edit", 0)); editID > 0 {
		if p, ok := inventory.ProductByID(editID); ok {
			data["ShowForm"] = true
			data["EditProduct"] = p
			data["FormDraft"] = model.FormDataFrom(p)
		}
	} else if orderID := int64(c.QueryInt("order", 0)); orderID > 0 {
		if p, ok := inventory.ProductByID(orderID); ok {
			data["OrderProduct"] = p
			data["OrderTotal"] = p.Price
		}
	}

	return data
}
