package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/palrajin0126/admin-panel/internal/dto"
	"github.com/palrajin0126/admin-panel/internal/repository"
	"github.com/palrajin0126/admin-panel/pkg/errs"
)

// Categories live only in the document store; there is no relational mirror
// and no two-phase write.
type CategoryServiceImpl struct {
	catalogRepo repository.CatalogRepository
}

func CreateCategoryService(catalogRepo repository.CatalogRepository) CategoryService {
	return &CategoryServiceImpl{catalogRepo: catalogRepo}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, data dto.CategoryRequest) (id string, err error) {
	id = uuid.New().String()

	if err = s.catalogRepo.AddCategory(ctx, id, data.Document()); err != nil {
		return "", errs.ErrInternalServer
	}

	return id, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, data dto.CategoryRequest) (err error) {
	fields := data.Document()
	if len(fields) == 0 {
		return errs.ErrClient
	}

	if err = s.catalogRepo.UpdateCategory(ctx, data.ID, fields); err != nil {
		if err == errs.ErrNotFound {
			return err
		}
		return errs.ErrInternalServer
	}

	return nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	if err = s.catalogRepo.DeleteCategory(ctx, id); err != nil {
		return errs.ErrInternalServer
	}

	return nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (docs []map[string]interface{}, err error) {
	docs, err = s.catalogRepo.GetCategories(ctx)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	return docs, nil
}
