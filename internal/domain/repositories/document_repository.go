package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-docgen/internal/domain/entities"
)

// DocumentFilters narrows archive listings
type DocumentFilters struct {
	Kind   *entities.DocumentKind
	Limit  int
	Offset int
}

// DocumentRepository defines the archive operations for generated documents
type DocumentRepository interface {
	Create(ctx context.Context, doc *entities.GeneratedDocument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.GeneratedDocument, error)
	List(ctx context.Context, filters DocumentFilters) ([]*entities.GeneratedDocument, error)
	Update(ctx context.Context, doc *entities.GeneratedDocument) error
}
