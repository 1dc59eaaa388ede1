package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
)

// ArticleInput carries the writable article fields from create/update requests.
type ArticleInput struct {
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	Status        string
}

// ArticleList is the paginated admin listing response.
type ArticleList struct {
	Articles   []model.ArticleWithAuthor `json:"articles"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"totalPages"`
}

// PublishedList is the paginated public listing response.
type PublishedList struct {
	Articles   []model.PublishedArticle `json:"articles"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"totalPages"`
}

// ArticleService exposes role-aware article operations.
type ArticleService interface {
	Create(ctx context.Context, in ArticleInput, authorID uint) (uint, error)
	List(ctx context.Context, opts repository.ArticleListOptions) (*ArticleList, error)
	ListPublished(ctx context.Context, opts repository.ArticleListOptions) (*PublishedList, error)
	GetByID(ctx context.Context, id uint) (*model.ArticleWithAuthor, error)
	Update(ctx context.Context, id uint, in ArticleInput, requesterRole string, requesterID uint) error
	Delete(ctx context.Context, id uint, requesterRole string, requesterID uint) error
	ViewPublished(ctx context.Context, id uint) (*model.ArticleWithAuthor, error)
}

type articleService struct {
	articles repository.ArticleRepository
}

// NewArticleService creates a new article service.
func NewArticleService(articles repository.ArticleRepository) ArticleService {
	return &articleService{articles: articles}
}

func (s *articleService) validateInput(in *ArticleInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.NewValidation("title", "is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return errs.NewValidation("content", "is required")
	}
	if in.Status == "" {
		in.Status = model.StatusDraft
	}
	if !model.ValidStatus(in.Status) {
		return errs.NewValidation("status", "must be draft, published or archived")
	}
	return nil
}

func (s *articleService) Create(ctx context.Context, in ArticleInput, authorID uint) (uint, error) {
	if err := s.validateInput(&in); err != nil {
		return 0, err
	}

	article := &model.Article{
		Title:         in.Title,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		FeaturedImage: in.FeaturedImage,
		Status:        in.Status,
		AuthorID:      authorID,
	}
	if in.Status == model.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}
	return article.ID, nil
}

func normalizePaging(opts *repository.ArticleListOptions, defaultLimit int) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func (s *articleService) List(ctx context.Context, opts repository.ArticleListOptions) (*ArticleList, error) {
	normalizePaging(&opts, 10)
	articles, total, err := s.articles.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &ArticleList{
		Articles:   articles,
		Total:      total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages(total, opts.Limit),
	}, nil
}

func (s *articleService) ListPublished(ctx context.Context, opts repository.ArticleListOptions) (*PublishedList, error) {
	normalizePaging(&opts, 12)
	articles, total, err := s.articles.ListPublished(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return &PublishedList{
		Articles:   articles,
		Total:      total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages(total, opts.Limit),
	}, nil
}

func (s *articleService) GetByID(ctx context.Context, id uint) (*model.ArticleWithAuthor, error) {
	return s.articles.FindByID(ctx, id)
}

// Update rewrites the writable fields. Editors may only touch their own
// articles; admin and super_admin bypass the ownership check. The original
// publish timestamp is preserved across edits while the article stays
// published, set on first publish and cleared when it leaves published.
func (s *articleService) Update(ctx context.Context, id uint, in ArticleInput, requesterRole string, requesterID uint) error {
	if err := s.validateInput(&in); err != nil {
		return err
	}

	existing, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if requesterRole == model.RoleEditor && existing.AuthorID != requesterID {
		return errs.ErrForbidden
	}

	var publishedAt *time.Time
	if in.Status == model.StatusPublished {
		if existing.PublishedAt != nil {
			publishedAt = existing.PublishedAt
		} else {
			now := time.Now()
			publishedAt = &now
		}
	}

	return s.articles.Update(ctx, id, map[string]interface{}{
		"title":          in.Title,
		"content":        in.Content,
		"excerpt":        in.Excerpt,
		"featured_image": in.FeaturedImage,
		"status":         in.Status,
		"published_at":   publishedAt,
	})
}

// Delete physically removes the article, under the same ownership rule as Update.
func (s *articleService) Delete(ctx context.Context, id uint, requesterRole string, requesterID uint) error {
	if requesterRole == model.RoleEditor {
		existing, err := s.articles.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.AuthorID != requesterID {
			return errs.ErrForbidden
		}
	}
	return s.articles.Delete(ctx, id)
}

// ViewPublished fetches a published article for the public site and counts
// the view. Unpublished articles are indistinguishable from missing ones.
func (s *articleService) ViewPublished(ctx context.Context, id uint) (*model.ArticleWithAuthor, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Status != model.StatusPublished {
		return nil, errs.ErrNotFound
	}
	if err := s.articles.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	return article, nil
}
