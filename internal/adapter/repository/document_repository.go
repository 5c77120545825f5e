package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
	"github.com/johnquangdev/meeting-docgen/internal/domain/repositories"
)

// DocumentRepository handles generated document archive operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create stores a new generated document
func (r *DocumentRepository) Create(ctx context.Context, doc *entities.GeneratedDocument) error {
	if doc == nil {
		return errors.New("document cannot be nil")
	}
	return r.db.WithContext(ctx).Create(doc).Error
}

// FindByID retrieves a generated document by ID
func (r *DocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.GeneratedDocument, error) {
	var doc entities.GeneratedDocument
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// List retrieves archived documents, newest first
func (r *DocumentRepository) List(ctx context.Context, filters repositories.DocumentFilters) ([]*entities.GeneratedDocument, error) {
	query := r.db.WithContext(ctx).Model(&entities.GeneratedDocument{})

	if filters.Kind != nil {
		query = query.Where("kind = ?", *filters.Kind)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var docs []*entities.GeneratedDocument
	if err := query.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Update saves changes to an archived document
func (r *DocumentRepository) Update(ctx context.Context, doc *entities.GeneratedDocument) error {
	if doc == nil {
		return errors.New("document cannot be nil")
	}
	return r.db.WithContext(ctx).Save(doc).Error
}
