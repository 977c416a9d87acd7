package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tujjor/internal/admin"
)

type adminProductResp struct {
	ID            int64  `json:"id"`
	ImageURL      string `json:"image_url"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalName  string `json:"original_name"`
	OriginalPrice int64  `json:"original_price"`
	Modified      bool   `json:"modified"`
}

type adminSessionResp struct {
	ID       string             `json:"id"`
	FirstID  string             `json:"first_id"`
	SecondID string             `json:"second_id"`
	Total    int                `json:"total"`
	Modified int                `json:"modified"`
	Products []adminProductResp `json:"products"`
}

func adminSessionToResp(sess *admin.Session) adminSessionResp {
	resp := adminSessionResp{
		ID:       sess.ID,
		FirstID:  sess.FirstID,
		SecondID: sess.SecondID,
		Total:    len(sess.Products),
		Modified: sess.ModifiedCount(),
		Products: make([]adminProductResp, 0, len(sess.Products)),
	}
	for i := range sess.Products {
		p := &sess.Products[i]
		resp.Products = append(resp.Products, adminProductResp{
			ID:            p.ID,
			ImageURL:      p.ImageURL,
			Name:          p.CurrentName,
			Price:         p.CurrentPrice,
			OriginalName:  p.OriginalName,
			OriginalPrice: p.OriginalPrice,
			Modified:      p.IsModified(),
		})
	}
	return resp
}

type openAdminSessionReq struct {
	FirstID  string `json:"first_id"`
	SecondID string `json:"second_id"`
}

// @Summary Open an admin edit session for a store
// @Tags admin
// @Accept json
// @Produce json
// @Param input body openAdminSessionReq true "Store pair"
// @Success 201 {object} adminSessionResp
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/sessions [post]
func (s *Server) openAdminSession(c *gin.Context) {
	var req openAdminSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.FirstID == "" || req.SecondID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first_id and second_id are required"})
		return
	}
	sess, err := s.admin.Open(c, req.FirstID, req.SecondID)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, adminSessionToResp(sess))
}

// @Summary Get edit session state
// @Tags admin
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} adminSessionResp
// @Failure 404 {object} map[string]string
// @Router /admin/sessions/{id} [get]
func (s *Server) getAdminSession(c *gin.Context) {
	sess, err := s.admin.Session(c.Param("id"))
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, adminSessionToResp(sess))
}

type editProductReq struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// @Summary Edit product name or price in the session
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param productId path int true "Product ID"
// @Param input body editProductReq true "Field is name or price; non-numeric price becomes 0"
// @Success 200 {object} adminProductResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/sessions/{id}/products/{productId} [patch]
func (s *Server) editAdminProduct(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req editProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.admin.Edit(c.Param("id"), productID, req.Field, req.Value)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, adminProductResp{
		ID:            p.ID,
		ImageURL:      p.ImageURL,
		Name:          p.CurrentName,
		Price:         p.CurrentPrice,
		OriginalName:  p.OriginalName,
		OriginalPrice: p.OriginalPrice,
		Modified:      p.IsModified(),
	})
}

// @Summary Save one modified product
// @Tags admin
// @Produce json
// @Param id path string true "Session ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} admin.SaveResult
// @Failure 400 {object} map[string]string "No modifications to save"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/sessions/{id}/products/{productId}/save [post]
func (s *Server) saveAdminProduct(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	res, err := s.admin.SaveOne(c, c.Param("id"), productID)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

type adjustPriceReq struct {
	Percent float64 `json:"percent"`
}

// @Summary Adjust product price by a signed percentage
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param productId path int true "Product ID"
// @Param input body adjustPriceReq true "Signed percent, e.g. -10 or 25"
// @Success 200 {object} adminProductResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/sessions/{id}/products/{productId}/adjust-price [post]
func (s *Server) adjustAdminPrice(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req adjustPriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	sess, err := s.admin.Session(c.Param("id"))
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	var current int64 = -1
	for i := range sess.Products {
		if sess.Products[i].ID == productID {
			current = sess.Products[i].CurrentPrice
			break
		}
	}
	if current < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": admin.ErrProductNotFound.Error()})
		return
	}

	adjusted := admin.AdjustPrice(current, req.Percent)
	p, err := s.admin.Edit(c.Param("id"), productID, "price", strconv.FormatInt(adjusted, 10))
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, adminProductResp{
		ID:            p.ID,
		ImageURL:      p.ImageURL,
		Name:          p.CurrentName,
		Price:         p.CurrentPrice,
		OriginalName:  p.OriginalName,
		OriginalPrice: p.OriginalPrice,
		Modified:      p.IsModified(),
	})
}

// @Summary Save all modified products in one batch
// @Tags admin
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} admin.SaveResult
// @Failure 400 {object} map[string]string "No modifications to save"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/sessions/{id}/save-all [post]
func (s *Server) saveAllAdminProducts(c *gin.Context) {
	res, err := s.admin.SaveAll(c, c.Param("id"))
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
