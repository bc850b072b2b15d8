package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	employeedomain "github.com/zagros/backoffice/internal/employee/domain"
)

type createEmployeeRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type updateEmployeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

func (s *Server) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Create(c.Request.Context(), employeedomain.CreateEmployeeRequest{
		Name:     strings.TrimSpace(req.Name),
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     employeedomain.Role(strings.ToLower(strings.TrimSpace(req.Role))),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var role *employeedomain.Role
	if req.Role != nil {
		r := employeedomain.Role(strings.ToLower(strings.TrimSpace(*req.Role)))
		role = &r
	}
	var status *employeedomain.Status
	if req.Status != nil {
		st := employeedomain.Status(strings.ToLower(strings.TrimSpace(*req.Status)))
		status = &st
	}

	resp, err := s.employeeSvc.Update(c.Request.Context(), employeedomain.UpdateEmployeeRequest{
		ID:       strings.TrimSpace(c.Param("id")),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
		Status:   status,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteEmployee(c *gin.Context) {
	if err := s.employeeSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) GetEmployee(c *gin.Context) {
	resp, err := s.employeeSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEmployees(c *gin.Context) {
	var query struct {
		listQuery
		Role string `form:"role"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.List(c.Request.Context(), employeedomain.ListEmployeeRequest{
		Pagination: query.Pagination,
		Search:     strings.TrimSpace(query.Search),
		Role:       strings.ToLower(strings.TrimSpace(query.Role)),
		SortBy:     strings.TrimSpace(query.SortBy),
		SortOrder:  strings.TrimSpace(query.SortOrder),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
