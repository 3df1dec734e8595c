package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/minio"
	"Atelier/internal/repository"
	"context"
	"strings"
)

type ProjectService interface {
	CreateProject(ctx context.Context, userID uint64, req *dto.ProjectCreateDTO) (uint64, error)
	UpdateProject(ctx context.Context, projectID uint64, req *dto.ProjectCreateDTO) error
	DeleteProject(ctx context.Context, projectID uint64) error
	GetProject(ctx context.Context, userID, projectID uint64) (*dto.ProjectDetailDTO, error)
	GetProjects(ctx context.Context, query *repository.ProjectQuery) (*dto.ProjectListDTO, error)
	GetFeaturedProjects(ctx context.Context, limit int) ([]*dto.ProjectDTO, error)

	CreateCategory(ctx context.Context, req *dto.CategoryCreateDTO) (uint64, error)
	DeleteCategory(ctx context.Context, id uint64) error
	GetCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	GetTags(ctx context.Context) ([]*dto.TagDTO, error)
}

type projectServiceImpl struct {
	projectRepo    repository.ProjectRepo
	categoryRepo   repository.CategoryRepo
	tagRepo        repository.TagRepo
	engagementRepo repository.EngagementRepo
	engagementSvc  EngagementService
}

func NewProjectService(
	projectRepo repository.ProjectRepo,
	categoryRepo repository.CategoryRepo,
	tagRepo repository.TagRepo,
	engagementRepo repository.EngagementRepo,
	engagementSvc EngagementService,
) ProjectService {
	return &projectServiceImpl{
		projectRepo:    projectRepo,
		categoryRepo:   categoryRepo,
		tagRepo:        tagRepo,
		engagementRepo: engagementRepo,
		engagementSvc:  engagementSvc,
	}
}

func (s *projectServiceImpl) CreateProject(ctx context.Context, userID uint64, req *dto.ProjectCreateDTO) (uint64, error) {
	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return 0, err
		}
		if category == nil {
			return 0, ErrCategoryNotFound
		}
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.Tags)
	if err != nil {
		return 0, err
	}

	project := &model.Project{
		UserID:       userID,
		Title:        req.Title,
		CategoryID:   req.CategoryID,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		Technologies: req.Technologies,
		Status:       req.Status,
		Featured:     req.Featured,
	}
	if project.Status == "" {
		project.Status = "completed"
	}

	if err := s.projectRepo.CreateProject(ctx, project, tagIDs); err != nil {
		return 0, err
	}
	return project.ID, nil
}

func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uint64, req *dto.ProjectCreateDTO) error {
	existing, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProjectNotFound
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.Tags)
	if err != nil {
		return err
	}

	project := &model.Project{
		ID:           projectID,
		Title:        req.Title,
		CategoryID:   req.CategoryID,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		Technologies: req.Technologies,
		Status:       req.Status,
		Featured:     req.Featured,
	}
	return s.projectRepo.UpdateProject(ctx, project, tagIDs)
}

func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uint64) error {
	existing, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProjectNotFound
	}
	return s.projectRepo.DeleteProject(ctx, projectID)
}

// GetProject 项目详情, 访问即计数
func (s *projectServiceImpl) GetProject(ctx context.Context, userID, projectID uint64) (*dto.ProjectDetailDTO, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	_ = s.projectRepo.IncrementViews(ctx, projectID)
	project.ViewsCount++

	detail := &dto.ProjectDetailDTO{ProjectDTO: *convertToProjectDTO(project)}
	detail.LikeCount, _ = s.engagementSvc.GetProjectLikeCount(ctx, projectID)
	detail.CommentCount, _ = s.engagementRepo.GetCommentCountByProjectID(ctx, projectID)
	if userID != 0 {
		detail.IsLiked, _ = s.engagementRepo.CheckProjectLikeExists(ctx, userID, projectID)
	}
	return detail, nil
}

func (s *projectServiceImpl) GetProjects(ctx context.Context, query *repository.ProjectQuery) (*dto.ProjectListDTO, error) {
	projects, total, err := s.projectRepo.GetProjectsByQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ProjectDTO, 0, len(projects))
	for _, project := range projects {
		list = append(list, convertToProjectDTO(project))
	}
	return &dto.ProjectListDTO{List: list, Total: total}, nil
}

func (s *projectServiceImpl) GetFeaturedProjects(ctx context.Context, limit int) ([]*dto.ProjectDTO, error) {
	projects, err := s.projectRepo.GetFeaturedProjects(ctx, limit)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ProjectDTO, 0, len(projects))
	for _, project := range projects {
		list = append(list, convertToProjectDTO(project))
	}
	return list, nil
}

func (s *projectServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryCreateDTO) (uint64, error) {
	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if isDuplicateError(err) {
			return 0, ErrActionDuplicate
		}
		return 0, err
	}
	return category.ID, nil
}

func (s *projectServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.DeleteCategory(ctx, id)
}

func (s *projectServiceImpl) GetCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		list = append(list, &dto.CategoryDTO{ID: category.ID, Name: category.Name})
	}
	return list, nil
}

func (s *projectServiceImpl) GetTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.GetAllTags(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		list = append(list, &dto.TagDTO{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	return list, nil
}

func (s *projectServiceImpl) resolveTagIDs(ctx context.Context, tagNames []string) ([]uint64, error) {
	if len(tagNames) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.GetOrCreateTags(ctx, tagNames)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func convertToProjectDTO(project *model.Project) *dto.ProjectDTO {
	item := &dto.ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		ImageURL:    minio.GetPublicURL(project.ImageURL),
		ProjectURL:  project.ProjectURL,
		GithubURL:   project.GithubURL,
		DemoURL:     project.DemoURL,
		Status:      project.Status,
		Featured:    project.Featured,
		ViewsCount:  project.ViewsCount,
		CreatedAt:   project.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if project.Technologies != "" {
		for _, tech := range strings.Split(project.Technologies, ",") {
			tech = strings.TrimSpace(tech)
			if tech != "" {
				item.Technologies = append(item.Technologies, tech)
			}
		}
	}
	if project.Category != nil {
		item.CategoryName = project.Category.Name
	}
	for _, tag := range project.Tags {
		item.Tags = append(item.Tags, tag.Name)
	}
	return item
}
