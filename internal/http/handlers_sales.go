package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/repository"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"
)

// @Summary List orders
// @Tags orders
// @Produce json
// @Param q query string false "Search by id, customer or email"
// @Param status query string false "Order status filter"
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	f := repository.OrderFilter{Query: c.Query("q"), Status: c.Query("status")}
	c.JSON(http.StatusOK, s.orders.List(c, f))
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Param q query string false "Search by name or email"
// @Param status query string false "Customer status filter"
// @Success 200 {array} domain.Customer
// @Router /customers [get]
func (s *Server) listCustomers(c *gin.Context) {
	f := repository.CustomerFilter{Query: c.Query("q"), Status: c.Query("status")}
	c.JSON(http.StatusOK, s.customers.List(c, f))
}

// @Summary Get customer by id
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (s *Server) getCustomer(c *gin.Context) {
	cust, err := s.customers.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

type setStatusReq struct {
	Status string `json:"status"`
}

// @Summary Change customer status
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param input body setStatusReq true "New status"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/status [put]
func (s *Server) setCustomerStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.customers.SetStatus(c, c.Param("id"), domain.CustomerStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	cust, err := s.customers.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// @Summary List discounts
// @Tags discounts
// @Produce json
// @Param q query string false "Search by code or derived status"
// @Success 200 {array} service.DiscountView
// @Router /discounts [get]
func (s *Server) listDiscounts(c *gin.Context) {
	c.JSON(http.StatusOK, s.discounts.List(c, c.Query("q")))
}

// @Summary Create discount
// @Tags discounts
// @Accept json
// @Produce json
// @Param input body service.DiscountDraft true "Discount form"
// @Success 201 {object} domain.Discount
// @Failure 400 {object} map[string]string
// @Router /discounts [post]
func (s *Server) createDiscount(c *gin.Context) {
	var draft service.DiscountDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	d, err := s.discounts.Create(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// @Summary Delete discount
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [delete]
func (s *Server) deleteDiscount(c *gin.Context) {
	if err := s.discounts.Delete(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle discount on or off
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} service.DiscountView
// @Failure 404 {object} map[string]string
// @Router /discounts/{id}/toggle [post]
func (s *Server) toggleDiscount(c *gin.Context) {
	v, err := s.discounts.Toggle(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param q query string false "Search by product, customer or text"
// @Param status query string false "Review status filter"
// @Param rating query int false "Exact rating, 0 matches any"
// @Success 200 {array} domain.Review
// @Router /reviews [get]
func (s *Server) listReviews(c *gin.Context) {
	f := repository.ReviewFilter{Query: c.Query("q"), Status: c.Query("status")}
	if raw := c.Query("rating"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.Rating = n
		}
	}
	c.JSON(http.StatusOK, s.reviews.List(c, f))
}

// @Summary Get review by id
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} domain.Review
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (s *Server) getReview(c *gin.Context) {
	r, err := s.reviews.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Approve pending review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews/{id}/approve [post]
func (s *Server) approveReview(c *gin.Context) {
	if err := s.reviews.Approve(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject pending review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews/{id}/reject [post]
func (s *Server) rejectReview(c *gin.Context) {
	if err := s.reviews.Reject(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Hide published review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews/{id}/hide [post]
func (s *Server) hideReview(c *gin.Context) {
	if err := s.reviews.Hide(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
