package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tujjor/internal/admin"
	"tujjor/internal/cart"
	"tujjor/internal/catalog"
	"tujjor/internal/domain"
	"tujjor/internal/order"
	"tujjor/internal/upstream"
)

type Server struct {
	engine          *gin.Engine
	catalog         *catalog.Service
	carts           *cart.Service
	orders          *order.Service
	admin           *admin.Service
	defaultPageSize int
}

func NewServer(cat *catalog.Service, carts *cart.Service, orders *order.Service, adm *admin.Service, defaultPageSize int) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{
		engine:          r,
		catalog:         cat,
		carts:           carts,
		orders:          orders,
		admin:           adm,
		defaultPageSize: defaultPageSize,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		stores := v1.Group("/stores")
		stores.GET(":storeId/products", s.listProducts)
		stores.POST(":storeId/reload", s.reloadCatalog)

		carts := v1.Group("/carts")
		carts.POST("", s.createCart)
		carts.GET(":id", s.getCart)
		carts.POST(":id/items", s.changeQuantity)
		carts.DELETE(":id", s.resetCart)
		carts.POST(":id/order", s.submitOrder)

		adm := v1.Group("/admin/sessions")
		adm.POST("", s.openAdminSession)
		adm.GET(":id", s.getAdminSession)
		adm.PATCH(":id/products/:productId", s.editAdminProduct)
		adm.POST(":id/products/:productId/save", s.saveAdminProduct)
		adm.POST(":id/products/:productId/adjust-price", s.adjustAdminPrice)
		adm.POST(":id/save-all", s.saveAllAdminProducts)
	}
}

type productListResp struct {
	Items      []domain.Product `json:"items"`
	TotalPages int              `json:"total_pages"`
	TotalItems int              `json:"total_items"`
	Page       int              `json:"page"`
	Degraded   bool             `json:"degraded"`
	ClientName string           `json:"client_name,omitempty"`
}

// @Summary List store products
// @Tags catalog
// @Produce json
// @Param storeId path string true "Store ID"
// @Param search query string false "Name contains (and barcode in warehouse mode)"
// @Param category query string false "Exact category, 'all' disables"
// @Param page query int false "Page, 1-based"
// @Param page_size query int false "Page size"
// @Param mode query string false "storefront or warehouse"
// @Success 200 {object} productListResp
// @Failure 400 {object} map[string]string
// @Router /stores/{storeId}/products [get]
func (s *Server) listProducts(c *gin.Context) {
	mode, ok := domain.ParseCatalogMode(c.Query("mode"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return
	}

	page := 1
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = n
	}
	pageSize := s.defaultPageSize
	if v := c.Query("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
			return
		}
		pageSize = n
	}

	snap, err := s.catalog.Catalog(c, c.Param("storeId"), mode)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	view := catalog.View(snap.Products, c.Query("search"), c.Query("category"), page, pageSize, mode == domain.ModeWarehouse)
	c.JSON(http.StatusOK, productListResp{
		Items:      view.Items,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Page:       page,
		Degraded:   snap.Degraded,
		ClientName: snap.ClientName,
	})
}

// @Summary Reload store catalog from the merchant backend
// @Tags catalog
// @Produce json
// @Param storeId path string true "Store ID"
// @Param mode query string false "storefront or warehouse"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /stores/{storeId}/reload [post]
func (s *Server) reloadCatalog(c *gin.Context) {
	mode, ok := domain.ParseCatalogMode(c.Query("mode"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return
	}
	snap, err := s.catalog.Reload(c, c.Param("storeId"), mode)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": len(snap.Products), "degraded": snap.Degraded})
}

type createCartReq struct {
	StoreID string `json:"store_id"`
	Mode    string `json:"mode"`
}

// @Summary Create a session cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body createCartReq true "Cart"
// @Success 201 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Router /carts [post]
func (s *Server) createCart(c *gin.Context) {
	var req createCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	mode, ok := domain.ParseCatalogMode(req.Mode)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode"})
		return
	}
	created, err := s.carts.Create(c, req.StoreID, mode)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Get cart with joined products and totals
// @Tags cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} cart.View
// @Failure 404 {object} map[string]string
// @Router /carts/{id} [get]
func (s *Server) getCart(c *gin.Context) {
	view, err := s.carts.Get(c, c.Param("id"))
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

type changeQuantityReq struct {
	ProductID int64 `json:"product_id"`
	Delta     int64 `json:"delta"`
}

type changeQuantityResp struct {
	Event domain.CartEvent `json:"event"`
	Cart  *cart.View       `json:"cart"`
}

// @Summary Change quantity of a product in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body changeQuantityReq true "Delta, any non-zero integer"
// @Success 200 {object} changeQuantityResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} changeQuantityResp "Warehouse stock cap reached"
// @Router /carts/{id}/items [post]
func (s *Server) changeQuantity(c *gin.Context) {
	var req changeQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ev, view, err := s.carts.ChangeQuantity(c, c.Param("id"), req.ProductID, req.Delta)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	resp := changeQuantityResp{Event: ev, Cart: view}
	if ev.Kind == domain.CartQuantityCapped {
		c.JSON(http.StatusConflict, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reset cart
// @Tags cart
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /carts/{id} [delete]
func (s *Server) resetCart(c *gin.Context) {
	if err := s.carts.Reset(c, c.Param("id")); err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type submitOrderReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// @Summary Submit the cart as an order
// @Tags order
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body submitOrderReq true "Customer contact info"
// @Success 200 {object} order.Receipt
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /carts/{id}/order [post]
func (s *Server) submitOrder(c *gin.Context) {
	var req submitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	receipt, err := s.orders.Submit(c, c.Param("id"), domain.CustomerInfo{Name: req.Name, Phone: req.Phone})
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrInvalidStore),
		errors.Is(err, cart.ErrZeroDelta),
		errors.Is(err, cart.ErrUnknownProduct),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrMissingName),
		errors.Is(err, order.ErrInvalidPhone),
		errors.Is(err, admin.ErrUnknownField),
		errors.Is(err, admin.ErrNothingModified):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrNotFound),
		errors.Is(err, admin.ErrSessionNotFound),
		errors.Is(err, admin.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrSubmitInFlight),
		errors.Is(err, admin.ErrSaveInFlight):
		return http.StatusConflict
	case errors.Is(err, order.ErrSubmitFailed),
		errors.Is(err, admin.ErrSaveFailed),
		errors.Is(err, upstream.ErrUnavailable),
		errors.Is(err, upstream.ErrBadPayload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
