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

type SiteService interface {
	GetAbout(ctx context.Context) (*dto.AboutDTO, error)
	UpdateAbout(ctx context.Context, req *dto.AboutUpdateDTO) error

	SubmitContact(ctx context.Context, req *dto.ContactCreateDTO) (uint64, error)
	GetContactMessages(ctx context.Context, unreadOnly bool, page, pageSize int) (*dto.ContactListDTO, error)
	MarkContactRead(ctx context.Context, id uint64) error
}

type siteServiceImpl struct {
	siteRepo repository.SiteRepo
}

func NewSiteService(siteRepo repository.SiteRepo) SiteService {
	return &siteServiceImpl{siteRepo: siteRepo}
}

func (s *siteServiceImpl) GetAbout(ctx context.Context) (*dto.AboutDTO, error) {
	about, err := s.siteRepo.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	if about == nil {
		return &dto.AboutDTO{}, nil
	}
	return &dto.AboutDTO{
		Description: about.Description,
		PhotoURL:    minio.GetPublicURL(about.PhotoURL),
	}, nil
}

func (s *siteServiceImpl) UpdateAbout(ctx context.Context, req *dto.AboutUpdateDTO) error {
	about, err := s.siteRepo.GetAbout(ctx)
	if err != nil {
		return err
	}
	if about == nil {
		about = &model.About{CreatedAt: time.Now()}
	}
	about.Description = req.Description
	about.PhotoURL = req.PhotoURL
	return s.siteRepo.SaveAbout(ctx, about)
}

func (s *siteServiceImpl) SubmitContact(ctx context.Context, req *dto.ContactCreateDTO) (uint64, error) {
	msg := &model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := s.siteRepo.CreateContactMessage(ctx, msg); err != nil {
		return 0, err
	}
	return msg.ID, nil
}

func (s *siteServiceImpl) GetContactMessages(ctx context.Context, unreadOnly bool, page, pageSize int) (*dto.ContactListDTO, error) {
	messages, total, err := s.siteRepo.GetContactMessages(ctx, unreadOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ContactMessageDTO, 0, len(messages))
	for _, msg := range messages {
		item := new(dto.ContactMessageDTO)
		_ = copier.Copy(item, msg)
		item.CreatedAt = msg.CreatedAt.Format("2006-01-02 15:04:05")
		list = append(list, item)
	}
	return &dto.ContactListDTO{List: list, Total: total}, nil
}

func (s *siteServiceImpl) MarkContactRead(ctx context.Context, id uint64) error {
	affected, err := s.siteRepo.MarkContactMessageRead(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContactNotFound
	}
	return nil
}
