package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeSvc service.ResumeService
}

func NewResumeHandler(resumeSvc service.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeSvc: resumeSvc,
	}
}

// GetResumes 简历列表
func (s *ResumeHandler) GetResumes(c *gin.Context) {
	list, err := s.resumeSvc.GetResumes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// DownloadResume 下载当前启用的简历, 每次下载都计数
func (s *ResumeHandler) DownloadResume(c *gin.Context) {
	language := c.DefaultQuery("lang", "en")

	download, err := s.resumeSvc.DownloadResume(c.Request.Context(), language)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.Reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", strconv.FormatInt(download.Size, 10))
	_, _ = io.Copy(c.Writer, download.Reader)
}

// CreateResume 新建简历记录
func (s *ResumeHandler) CreateResume(c *gin.Context) {
	var req dto.ResumeCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.resumeSvc.CreateResume(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// DeleteResume 删除简历及其文件
func (s *ResumeHandler) DeleteResume(c *gin.Context) {
	resumeID, err := strconv.ParseUint(c.Param("resume_id"), 10, 64)
	if err != nil || resumeID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.resumeSvc.DeleteResume(c.Request.Context(), resumeID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
