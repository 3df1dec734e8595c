package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/minio"
	"Atelier/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type TestimonialService interface {
	SubmitTestimonial(ctx context.Context, req *dto.TestimonialCreateDTO) (uint64, error)
	UpdateTestimonial(ctx context.Context, id uint64, req *dto.TestimonialUpdateDTO) error
	DeleteTestimonial(ctx context.Context, id uint64) error
	GetTestimonials(ctx context.Context, featuredOnly bool, page, pageSize int) (*dto.TestimonialListDTO, error)
}

type testimonialServiceImpl struct {
	testimonialRepo repository.TestimonialRepo
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepo) TestimonialService {
	return &testimonialServiceImpl{testimonialRepo: testimonialRepo}
}

// SubmitTestimonial 公开提交, 精选与否由管理员后续审定
func (s *testimonialServiceImpl) SubmitTestimonial(ctx context.Context, req *dto.TestimonialCreateDTO) (uint64, error) {
	testimonial := &model.Testimonial{
		Name:      req.Name,
		Position:  req.Position,
		Company:   req.Company,
		Message:   req.Message,
		PhotoURL:  req.PhotoURL,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}
	if err := s.testimonialRepo.CreateTestimonial(ctx, testimonial); err != nil {
		return 0, err
	}
	return testimonial.ID, nil
}

func (s *testimonialServiceImpl) UpdateTestimonial(ctx context.Context, id uint64, req *dto.TestimonialUpdateDTO) error {
	existing, err := s.testimonialRepo.GetTestimonialByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTestimonialNotFound
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Position != nil {
		existing.Position = *req.Position
	}
	if req.Company != nil {
		existing.Company = *req.Company
	}
	if req.Message != nil {
		existing.Message = *req.Message
	}
	if req.PhotoURL != nil {
		existing.PhotoURL = *req.PhotoURL
	}
	if req.Rating != nil {
		existing.Rating = *req.Rating
	}
	if req.IsFeatured != nil {
		existing.IsFeatured = *req.IsFeatured
	}
	return s.testimonialRepo.UpdateTestimonial(ctx, existing)
}

func (s *testimonialServiceImpl) DeleteTestimonial(ctx context.Context, id uint64) error {
	existing, err := s.testimonialRepo.GetTestimonialByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTestimonialNotFound
	}
	return s.testimonialRepo.DeleteTestimonial(ctx, id)
}

func (s *testimonialServiceImpl) GetTestimonials(ctx context.Context, featuredOnly bool, page, pageSize int) (*dto.TestimonialListDTO, error) {
	testimonials, total, err := s.testimonialRepo.GetTestimonials(ctx, featuredOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.TestimonialDTO, 0, len(testimonials))
	for _, t := range testimonials {
		item := new(dto.TestimonialDTO)
		_ = copier.Copy(item, t)
		item.PhotoURL = minio.GetPublicURL(t.PhotoURL)
		item.CreatedAt = t.CreatedAt.Format("2006-01-02 15:04:05")
		list = append(list, item)
	}
	return &dto.TestimonialListDTO{List: list, Total: total}, nil
}
