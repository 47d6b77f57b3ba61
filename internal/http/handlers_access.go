package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaswanth12321/ecom-admin-suite/internal/domain"
	"github.com/jaswanth12321/ecom-admin-suite/internal/service"
)

// @Summary List roles
// @Tags access
// @Produce json
// @Param q query string false "Search by name or description"
// @Success 200 {array} domain.Role
// @Router /roles [get]
func (s *Server) listRoles(c *gin.Context) {
	c.JSON(http.StatusOK, s.access.ListRoles(c, c.Query("q")))
}

// @Summary Get role by id
// @Tags access
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} domain.Role
// @Failure 404 {object} map[string]string
// @Router /roles/{id} [get]
func (s *Server) getRole(c *gin.Context) {
	r, err := s.access.GetRole(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Create role
// @Tags access
// @Accept json
// @Produce json
// @Param input body service.RoleDraft true "Role form"
// @Success 201 {object} domain.Role
// @Failure 400 {object} map[string]string
// @Router /roles [post]
func (s *Server) createRole(c *gin.Context) {
	var draft service.RoleDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	r, err := s.access.CreateRole(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary Update custom role
// @Tags access
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param input body service.RoleDraft true "Role form"
// @Success 200 {object} domain.Role
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /roles/{id} [put]
func (s *Server) updateRole(c *gin.Context) {
	var draft service.RoleDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	r, err := s.access.UpdateRole(c, c.Param("id"), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Delete custom role
// @Tags access
// @Produce json
// @Param id path string true "Role ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /roles/{id} [delete]
func (s *Server) deleteRole(c *gin.Context) {
	if err := s.access.DeleteRole(c, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List admin users
// @Tags access
// @Produce json
// @Param q query string false "Search by name, email or role"
// @Success 200 {array} domain.AdminUser
// @Router /users [get]
func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.access.ListUsers(c, c.Query("q")))
}

// @Summary Create admin user
// @Tags access
// @Accept json
// @Produce json
// @Param input body service.UserDraft true "User form"
// @Success 201 {object} domain.AdminUser
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (s *Server) createUser(c *gin.Context) {
	var draft service.UserDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, err := s.access.CreateUser(c, draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// @Summary Change admin user status
// @Tags access
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body setStatusReq true "New status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/status [put]
func (s *Server) setUserStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.access.SetUserStatus(c, c.Param("id"), domain.UserStatus(req.Status)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type setRoleReq struct {
	Role string `json:"role"`
}

// @Summary Change admin user role
// @Tags access
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body setRoleReq true "Role name"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/role [put]
func (s *Server) setUserRole(c *gin.Context) {
	var req setRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.access.SetUserRole(c, c.Param("id"), req.Role); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
