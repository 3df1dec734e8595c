package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialSvc service.TestimonialService
}

func NewTestimonialHandler(testimonialSvc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialSvc: testimonialSvc,
	}
}

// GetTestimonials 推荐语列表, featured=true 只取精选
func (s *TestimonialHandler) GetTestimonials(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	featuredOnly := c.Query("featured") == "true" || c.Query("featured") == "1"

	list, err := s.testimonialSvc.GetTestimonials(c.Request.Context(), featuredOnly, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// SubmitTestimonial 公开提交推荐语
func (s *TestimonialHandler) SubmitTestimonial(c *gin.Context) {
	var req dto.TestimonialCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.testimonialSvc.SubmitTestimonial(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// UpdateTestimonial 管理员修改推荐语, 含精选标记
func (s *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	testimonialID, err := strconv.ParseUint(c.Param("testimonial_id"), 10, 64)
	if err != nil || testimonialID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.TestimonialUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.testimonialSvc.UpdateTestimonial(c.Request.Context(), testimonialID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteTestimonial 删除推荐语
func (s *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	testimonialID, err := strconv.ParseUint(c.Param("testimonial_id"), 10, 64)
	if err != nil || testimonialID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.testimonialSvc.DeleteTestimonial(c.Request.Context(), testimonialID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
