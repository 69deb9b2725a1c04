package catalog

import (
	"context"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
)

type staticEntry struct {
	category entity.Category
	services []entity.ServiceOption
}

// staticCatalog build vaqtida o'rnatilgan menyu (tartib muhim)
var staticCatalog = []staticEntry{
	{
		category: entity.Category{Key: "maintenance", Label: "Maintenance"},
		services: []entity.ServiceOption{
			{Key: "electrician", Label: "Electrician"},
			{Key: "plumber", Label: "Plumber"},
			{Key: "painter", Label: "Painter"},
			{Key: "carpenter", Label: "Carpenter"},
		},
	},
	{
		category: entity.Category{Key: "cleaning", Label: "Cleaning"},
		services: []entity.ServiceOption{
			{Key: "house_cleaning", Label: "House Cleaning"},
			{Key: "office_cleaning", Label: "Office Cleaning"},
			{Key: "laundry", Label: "Laundry"},
		},
	},
	{
		category: entity.Category{Key: "appliance", Label: "Appliance Repair"},
		services: []entity.ServiceOption{
			{Key: "fridge_repair", Label: "Fridge Repair"},
			{Key: "tv_repair", Label: "TV Repair"},
			{Key: "washer_repair", Label: "Washing Machine Repair"},
		},
	},
	{
		category: entity.Category{Key: "moving", Label: "Moving & Delivery"},
		services: []entity.ServiceOption{
			{Key: "house_moving", Label: "House Moving"},
			{Key: "furniture", Label: "Furniture Delivery"},
		},
	},
}

type staticCatalogRepository struct {
	entries []staticEntry
}

// NewStaticCatalogRepository embedded katalog bilan repository yaratish
func NewStaticCatalogRepository() repository.CatalogRepository {
	return &staticCatalogRepository{entries: staticCatalog}
}

func (r *staticCatalogRepository) ListCategories(_ context.Context) ([]entity.Category, error) {
	res := make([]entity.Category, 0, len(r.entries))
	for _, e := range r.entries {
		res = append(res, e.category)
	}
	return res, nil
}

func (r *staticCatalogRepository) ListServices(_ context.Context, categoryKey string) ([]entity.ServiceOption, error) {
	for _, e := range r.entries {
		if e.category.Key == categoryKey {
			out := make([]entity.ServiceOption, len(e.services))
			copy(out, e.services)
			return out, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}
