package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "landingcms/internal/errors"
	"landingcms/internal/model"
)

// ArticleListOptions filter and paginate article queries.
// Zero values mean "no filter"; Page and Limit are normalized by the service.
type ArticleListOptions struct {
	Page     int
	Limit    int
	Status   string
	AuthorID uint
	Search   string
}

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uint) (*model.ArticleWithAuthor, error)
	List(ctx context.Context, opts ArticleListOptions) ([]model.ArticleWithAuthor, int64, error)
	ListPublished(ctx context.Context, opts ArticleListOptions) ([]model.PublishedArticle, int64, error)
	Update(ctx context.Context, id uint, values map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// FindByID returns the full article row joined with author display fields.
// Author fields stay NULL when the author has been deleted.
func (r *articleRepository) FindByID(ctx context.Context, id uint) (*model.ArticleWithAuthor, error) {
	var article model.ArticleWithAuthor
	err := r.db.WithContext(ctx).Model(&model.Article{}).
		Select("articles.*, users.username AS author_name, users.email AS author_email").
		Joins("LEFT JOIN users ON users.id = articles.author_id").
		Where("articles.id = ?", id).
		Take(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// adminFilters applies the conjunctive admin list filters to a query.
func adminFilters(q *gorm.DB, opts ArticleListOptions) *gorm.DB {
	if opts.Status != "" {
		q = q.Where("articles.status = ?", opts.Status)
	}
	if opts.AuthorID != 0 {
		q = q.Where("articles.author_id = ?", opts.AuthorID)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("articles.title LIKE ? OR articles.content LIKE ?", like, like)
	}
	return q
}

func (r *articleRepository) List(ctx context.Context, opts ArticleListOptions) ([]model.ArticleWithAuthor, int64, error) {
	var total int64
	if err := adminFilters(r.db.WithContext(ctx).Model(&model.Article{}), opts).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := make([]model.ArticleWithAuthor, 0)
	err := adminFilters(r.db.WithContext(ctx).Model(&model.Article{}), opts).
		Select("articles.*, users.username AS author_name, users.email AS author_email").
		Joins("LEFT JOIN users ON users.id = articles.author_id").
		Order("articles.created_at DESC").
		Limit(opts.Limit).
		Offset((opts.Page - 1) * opts.Limit).
		Scan(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// publishedFilters restricts to published rows; search covers title and excerpt
// only, matching what the public news page displays.
func publishedFilters(q *gorm.DB, opts ArticleListOptions) *gorm.DB {
	q = q.Where("articles.status = ?", model.StatusPublished)
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("articles.title LIKE ? OR articles.excerpt LIKE ?", like, like)
	}
	return q
}

func (r *articleRepository) ListPublished(ctx context.Context, opts ArticleListOptions) ([]model.PublishedArticle, int64, error) {
	var total int64
	if err := publishedFilters(r.db.WithContext(ctx).Model(&model.Article{}), opts).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := make([]model.PublishedArticle, 0)
	err := publishedFilters(r.db.WithContext(ctx).Model(&model.Article{}), opts).
		Select("articles.id, articles.title, articles.excerpt, articles.featured_image, articles.published_at, articles.views, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = articles.author_id").
		Order("articles.published_at DESC").
		Limit(opts.Limit).
		Offset((opts.Page - 1) * opts.Limit).
		Scan(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) Update(ctx context.Context, id uint, values map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Updates(values).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the counter atomically in SQL, so N calls add exactly
// N regardless of concurrent readers.
func (r *articleRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
