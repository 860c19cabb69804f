package repository

import (
	"encoding/json"
	"os"

	apperrors "storefront-service/errors"
	"storefront-service/models"
)

type ProductRepository interface {
	List() ([]models.Product, error)
}

// fileProductRepo reads the catalog file on every call, so catalog edits
// show up without a restart. The file is the single source of truth for
// which price IDs are legal at checkout.
type fileProductRepo struct {
	path string
}

func NewFileProductRepo(path string) ProductRepository {
	return &fileProductRepo{path: path}
}

func (r *fileProductRepo) List() ([]models.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
	}
	return products, nil
}
