package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/minio"
	"Atelier/internal/repository"
	"context"
	"io"
	"time"
)

// ResumeDownload 下载流与响应头所需的元信息, 调用方负责关闭 Reader
type ResumeDownload struct {
	Reader   io.ReadCloser
	Size     int64
	Filename string
}

type ResumeService interface {
	CreateResume(ctx context.Context, req *dto.ResumeCreateDTO) (uint64, error)
	DeleteResume(ctx context.Context, id uint64) error
	GetResumes(ctx context.Context) ([]*dto.ResumeDTO, error)
	DownloadResume(ctx context.Context, language string) (*ResumeDownload, error)
}

type resumeServiceImpl struct {
	resumeRepo repository.ResumeRepo
}

func NewResumeService(resumeRepo repository.ResumeRepo) ResumeService {
	return &resumeServiceImpl{resumeRepo: resumeRepo}
}

func (s *resumeServiceImpl) CreateResume(ctx context.Context, req *dto.ResumeCreateDTO) (uint64, error) {
	resume := &model.Resume{
		Title:     req.Title,
		FileKey:   req.FileKey,
		Language:  req.Language,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if resume.Language == "" {
		resume.Language = "en"
	}
	if req.IsActive != nil {
		resume.IsActive = *req.IsActive
	}
	if err := s.resumeRepo.CreateResume(ctx, resume); err != nil {
		return 0, err
	}
	return resume.ID, nil
}

func (s *resumeServiceImpl) DeleteResume(ctx context.Context, id uint64) error {
	resume, err := s.resumeRepo.GetResumeByID(ctx, id)
	if err != nil {
		return err
	}
	if resume == nil {
		return ErrResumeNotFound
	}
	if err := s.resumeRepo.DeleteResume(ctx, id); err != nil {
		return err
	}

	go func(fileKey string) {
		_ = minio.DeleteFile(context.Background(), fileKey)
	}(resume.FileKey)
	return nil
}

func (s *resumeServiceImpl) GetResumes(ctx context.Context) ([]*dto.ResumeDTO, error) {
	resumes, err := s.resumeRepo.GetAllResumes(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ResumeDTO, 0, len(resumes))
	for _, resume := range resumes {
		list = append(list, &dto.ResumeDTO{
			ID:            resume.ID,
			Title:         resume.Title,
			Language:      resume.Language,
			IsActive:      resume.IsActive,
			DownloadCount: resume.DownloadCount,
			CreatedAt:     resume.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return list, nil
}

// DownloadResume 取当前启用的简历并流式返回, 每次下载都累加计数
func (s *resumeServiceImpl) DownloadResume(ctx context.Context, language string) (*ResumeDownload, error) {
	if language == "" {
		language = "en"
	}
	resume, err := s.resumeRepo.GetActiveResume(ctx, language)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}

	reader, size, err := minio.GetFile(ctx, resume.FileKey)
	if err != nil {
		return nil, ErrFileNotExist
	}

	if err := s.resumeRepo.IncrementDownloadCount(ctx, resume.ID); err != nil {
		_ = reader.Close()
		return nil, err
	}

	return &ResumeDownload{
		Reader:   reader,
		Size:     size,
		Filename: resume.Title + ".pdf",
	}, nil
}
