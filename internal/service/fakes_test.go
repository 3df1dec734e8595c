package service

import (
	"Atelier/internal/api/config"
	"Atelier/internal/model"
	"Atelier/internal/pkg/redis"
	"Atelier/internal/repository"
	"context"
	"os"
	"sort"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		Site: config.SiteConfig{BaseURL: "https://portfolio.example.com"},
		JWT:  config.JWTConfig{Secret: "test-secret", ExpireHour: 24},
	}
	// 指向不可达地址, 缓存路径全部走 DB 回源
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
	os.Exit(m.Run())
}

type fakeProjectRepo struct {
	projects map[uint64]*model.Project
}

func newFakeProjectRepo(projects ...*model.Project) *fakeProjectRepo {
	repo := &fakeProjectRepo{projects: make(map[uint64]*model.Project)}
	for _, p := range projects {
		repo.projects[p.ID] = p
	}
	return repo
}

func (f *fakeProjectRepo) CreateProject(ctx context.Context, project *model.Project, tagIDs []uint64) error {
	if project.ID == 0 {
		project.ID = uint64(len(f.projects) + 1)
	}
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) UpdateProject(ctx context.Context, project *model.Project, tagIDs []uint64) error {
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) DeleteProject(ctx context.Context, id uint64) error {
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) GetProjectByID(ctx context.Context, id uint64) (*model.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectRepo) GetProjectsByQuery(ctx context.Context, query *repository.ProjectQuery) ([]*model.Project, int64, error) {
	return nil, 0, nil
}

func (f *fakeProjectRepo) GetFeaturedProjects(ctx context.Context, limit int) ([]*model.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) GetPopularProjects(ctx context.Context, limit int) ([]*model.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) IncrementViews(ctx context.Context, id uint64) error {
	if p, ok := f.projects[id]; ok {
		p.ViewsCount++
	}
	return nil
}

func (f *fakeProjectRepo) CountProjects(ctx context.Context) (int64, error) {
	return int64(len(f.projects)), nil
}

func (f *fakeProjectRepo) SumProjectViews(ctx context.Context) (int64, error) {
	var total int64
	for _, p := range f.projects {
		total += int64(p.ViewsCount)
	}
	return total, nil
}

type fakeEngagementRepo struct {
	comments     map[uint64]*model.Comment
	nextID       uint64
	projectLikes map[[2]uint64]bool
	commentLikes map[[2]uint64]bool
}

func newFakeEngagementRepo(comments ...*model.Comment) *fakeEngagementRepo {
	repo := &fakeEngagementRepo{
		comments:     make(map[uint64]*model.Comment),
		projectLikes: make(map[[2]uint64]bool),
		commentLikes: make(map[[2]uint64]bool),
	}
	for _, c := range comments {
		repo.comments[c.ID] = c
		if c.ID > repo.nextID {
			repo.nextID = c.ID
		}
	}
	return repo
}

func (f *fakeEngagementRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeEngagementRepo) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	return f.comments[commentID], nil
}

func (f *fakeEngagementRepo) GetRootCommentsByProjectID(ctx context.Context, projectID uint64, limit, offset int) ([]*model.Comment, error) {
	var res []*model.Comment
	for _, c := range f.comments {
		if c.ProjectID == projectID && c.ParentID == 0 {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, nil
}

func (f *fakeEngagementRepo) GetRepliesByParentID(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, error) {
	var res []*model.Comment
	for _, c := range f.comments {
		if c.ParentID == parentID {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeEngagementRepo) GetReplyCountByParentID(ctx context.Context, parentID uint64) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) UpdateCommentText(ctx context.Context, commentID uint64, text string) error {
	if c, ok := f.comments[commentID]; ok {
		c.Text = text
		c.IsEdited = true
	}
	return nil
}

func (f *fakeEngagementRepo) SoftDeleteComment(ctx context.Context, commentID uint64) error {
	if c, ok := f.comments[commentID]; ok {
		c.IsDeleted = true
		c.Text = "该评论已被删除"
		c.ImageURL = ""
	}
	return nil
}

func (f *fakeEngagementRepo) GetCommentCountByProjectID(ctx context.Context, projectID uint64) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.ProjectID == projectID && !c.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) GetCommenterIDsByProjectID(ctx context.Context, projectID uint64) ([]uint64, error) {
	seen := make(map[uint64]struct{})
	var ids []uint64
	for _, c := range f.comments {
		if c.ProjectID != projectID {
			continue
		}
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		ids = append(ids, c.UserID)
	}
	return ids, nil
}

func (f *fakeEngagementRepo) CreateProjectLike(ctx context.Context, like *model.ProjectLike) error {
	f.projectLikes[[2]uint64{like.UserID, like.ProjectID}] = true
	return nil
}

func (f *fakeEngagementRepo) DeleteProjectLike(ctx context.Context, userID, projectID uint64) error {
	delete(f.projectLikes, [2]uint64{userID, projectID})
	return nil
}

func (f *fakeEngagementRepo) CheckProjectLikeExists(ctx context.Context, userID, projectID uint64) (bool, error) {
	return f.projectLikes[[2]uint64{userID, projectID}], nil
}

func (f *fakeEngagementRepo) GetProjectLikeCount(ctx context.Context, projectID uint64) (int64, error) {
	var count int64
	for key := range f.projectLikes {
		if key[1] == projectID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) CountAllProjectLikes(ctx context.Context) (int64, error) {
	return int64(len(f.projectLikes)), nil
}

func (f *fakeEngagementRepo) CreateCommentLike(ctx context.Context, cl *model.CommentLike) error {
	f.commentLikes[[2]uint64{cl.UserID, cl.CommentID}] = true
	return nil
}

func (f *fakeEngagementRepo) DeleteCommentLike(ctx context.Context, userID, commentID uint64) error {
	delete(f.commentLikes, [2]uint64{userID, commentID})
	return nil
}

func (f *fakeEngagementRepo) CheckCommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error) {
	return f.commentLikes[[2]uint64{userID, commentID}], nil
}

func (f *fakeEngagementRepo) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	for key := range f.commentLikes {
		if key[1] == commentID {
			count++
		}
	}
	return count, nil
}

type fakeNotificationRepo struct {
	created    []*model.Notification
	markHit    bool
	markResult int64
}

func (f *fakeNotificationRepo) CreateNotifications(ctx context.Context, notifications []*model.Notification) error {
	f.created = append(f.created, notifications...)
	return nil
}

func (f *fakeNotificationRepo) GetNotificationsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Notification, int64, error) {
	var res []*model.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			res = append(res, n)
		}
	}
	return res, int64(len(res)), nil
}

func (f *fakeNotificationRepo) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	for _, n := range f.created {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, userID, notificationID uint64) (int64, error) {
	f.markHit = true
	return f.markResult, nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID uint64) error {
	for _, n := range f.created {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

// messagesFor 按接收人取文案, 便于断言
func (f *fakeNotificationRepo) messagesFor(userID uint64) []string {
	var res []string
	for _, n := range f.created {
		if n.UserID == userID {
			res = append(res, n.Message)
		}
	}
	return res
}

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint64]*model.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	var res []*model.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error {
	if user.ID == 0 {
		user.ID = uint64(len(f.users) + 1)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetProfileByUserId(ctx context.Context, userID uint64) (*model.Profile, error) {
	if u, ok := f.users[userID]; ok {
		return &u.Profile, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	return nil
}

type fakeBlogRepo struct {
	posts  map[uint64]*model.BlogPost
	nextID uint64
}

func newFakeBlogRepo(posts ...*model.BlogPost) *fakeBlogRepo {
	repo := &fakeBlogRepo{posts: make(map[uint64]*model.BlogPost)}
	for _, p := range posts {
		repo.posts[p.ID] = p
		if p.ID > repo.nextID {
			repo.nextID = p.ID
		}
	}
	return repo
}

func (f *fakeBlogRepo) CreateBlogPost(ctx context.Context, post *model.BlogPost, tagIDs []uint64) error {
	f.nextID++
	post.ID = f.nextID
	f.posts[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) UpdateBlogPost(ctx context.Context, post *model.BlogPost, tagIDs []uint64) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) DeleteBlogPost(ctx context.Context, id uint64) error {
	delete(f.posts, id)
	return nil
}

func (f *fakeBlogRepo) GetBlogPostByID(ctx context.Context, id uint64) (*model.BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeBlogRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogRepo) GetPublishedPosts(ctx context.Context, tag, keyword string, limit, offset int) ([]*model.BlogPost, int64, error) {
	var res []*model.BlogPost
	for _, p := range f.posts {
		if p.IsPublished {
			res = append(res, p)
		}
	}
	return res, int64(len(res)), nil
}

func (f *fakeBlogRepo) GetRelatedPosts(ctx context.Context, postID uint64, limit int) ([]*model.BlogPost, error) {
	return nil, nil
}

func (f *fakeBlogRepo) GetPopularPosts(ctx context.Context, limit int) ([]*model.BlogPost, error) {
	return nil, nil
}

func (f *fakeBlogRepo) IncrementViews(ctx context.Context, id uint64) error {
	if p, ok := f.posts[id]; ok {
		p.ViewsCount++
	}
	return nil
}

func (f *fakeBlogRepo) CountPublishedPosts(ctx context.Context) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if p.IsPublished {
			count++
		}
	}
	return count, nil
}

func (f *fakeBlogRepo) SumBlogViews(ctx context.Context) (int64, error) {
	var total int64
	for _, p := range f.posts {
		total += int64(p.ViewsCount)
	}
	return total, nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*model.Category
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	if f.categories == nil {
		f.categories = make(map[uint64]*model.Category)
	}
	category.ID = uint64(len(f.categories) + 1)
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, id uint64) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id uint64) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetAllCategories(ctx context.Context) ([]*model.Category, error) {
	return nil, nil
}

type fakeTagRepo struct {
	nextID uint64
}

func (f *fakeTagRepo) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error) {
	var res []*model.Tag
	for _, name := range tagNames {
		f.nextID++
		res = append(res, &model.Tag{ID: f.nextID, Name: name})
	}
	return res, nil
}

func (f *fakeTagRepo) GetAllTags(ctx context.Context) ([]*model.Tag, error) {
	return nil, nil
}

func (f *fakeTagRepo) GetTagsByBlogPostID(ctx context.Context, postID uint64) ([]*model.Tag, error) {
	return nil, nil
}

func (f *fakeTagRepo) GetPopularTags(ctx context.Context, limit int) ([]*repository.TagUsage, error) {
	return nil, nil
}

type fakeAdRepo struct {
	config *model.AdSenseConfig
	units  map[uint64]*model.AdUnit
	saved  []*model.AdPerformance
}

func newFakeAdRepo(cfg *model.AdSenseConfig, units ...*model.AdUnit) *fakeAdRepo {
	repo := &fakeAdRepo{config: cfg, units: make(map[uint64]*model.AdUnit)}
	for _, u := range units {
		repo.units[u.ID] = u
	}
	return repo
}

func (f *fakeAdRepo) GetOrCreateConfig(ctx context.Context) (*model.AdSenseConfig, error) {
	if f.config == nil {
		f.config = &model.AdSenseConfig{ID: 1, PublisherID: "ca-pub-0000000000000000", TestMode: true}
	}
	return f.config, nil
}

func (f *fakeAdRepo) UpdateConfig(ctx context.Context, cfg *model.AdSenseConfig) error {
	f.config = cfg
	return nil
}

func (f *fakeAdRepo) CreateAdUnit(ctx context.Context, unit *model.AdUnit) error {
	if unit.ID == 0 {
		unit.ID = uint64(len(f.units) + 1)
	}
	f.units[unit.ID] = unit
	return nil
}

func (f *fakeAdRepo) UpdateAdUnit(ctx context.Context, unit *model.AdUnit) error {
	f.units[unit.ID] = unit
	return nil
}

func (f *fakeAdRepo) DeleteAdUnit(ctx context.Context, id uint64) error {
	delete(f.units, id)
	return nil
}

func (f *fakeAdRepo) GetAdUnitByID(ctx context.Context, id uint64) (*model.AdUnit, error) {
	return f.units[id], nil
}

func (f *fakeAdRepo) GetAllAdUnits(ctx context.Context) ([]*model.AdUnit, error) {
	res := make([]*model.AdUnit, 0, len(f.units))
	for _, u := range f.units {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeAdRepo) GetActiveAdUnitsByPosition(ctx context.Context, position string) ([]*model.AdUnit, error) {
	var res []*model.AdUnit
	for _, u := range f.units {
		if u.IsActive && u.Position == position {
			res = append(res, u)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func (f *fakeAdRepo) SaveOrUpdatePerformance(ctx context.Context, perf *model.AdPerformance) error {
	f.saved = append(f.saved, perf)
	return nil
}

func (f *fakeAdRepo) GetPerformanceByUnit(ctx context.Context, adUnitID uint64, since time.Time) ([]*model.AdPerformance, error) {
	return nil, nil
}

type fakeStatsRepo struct {
	saved *model.PortfolioStats
}

func (f *fakeStatsRepo) SaveStats(ctx context.Context, stats *model.PortfolioStats) error {
	f.saved = stats
	return nil
}
