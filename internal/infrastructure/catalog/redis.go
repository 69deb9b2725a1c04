package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
)

// redisCatalogRepository katalogni tashqi document store dan oladi.
// Every call re-fetches the document by its fixed key — no caching across
// requests, so catalog edits show up on the next step entry.
type redisCatalogRepository struct {
	client *redis.Client
	docKey string
}

// NewRedisCatalogRepository yangi Redis-backed katalog repository yaratish
func NewRedisCatalogRepository(addr, docKey string) repository.CatalogRepository {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &redisCatalogRepository{client: client, docKey: docKey}
}

func (r *redisCatalogRepository) fetchDocument(ctx context.Context) ([]entity.CategoryRecord, error) {
	raw, err := r.client.Get(ctx, r.docKey).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("catalog document %q not found", r.docKey)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch catalog document: %w", err)
	}
	return parseCatalogDocument(raw)
}

// parseCatalogDocument dokument JSON: ordered [{"key": ..., "services": [...]}]
func parseCatalogDocument(raw []byte) ([]entity.CategoryRecord, error) {
	var records []entity.CategoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse catalog document: %w", err)
	}
	return records, nil
}

func (r *redisCatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	records, err := r.fetchDocument(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]entity.Category, 0, len(records))
	for _, rec := range records {
		res = append(res, entity.Category{Key: rec.Key, Label: labelFor(rec.Key)})
	}
	return res, nil
}

func (r *redisCatalogRepository) ListServices(ctx context.Context, categoryKey string) ([]entity.ServiceOption, error) {
	records, err := r.fetchDocument(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Key != categoryKey {
			continue
		}
		res := make([]entity.ServiceOption, 0, len(rec.Services))
		for _, key := range rec.Services {
			res = append(res, entity.ServiceOption{Key: key, Label: labelFor(key)})
		}
		return res, nil
	}
	return nil, repository.ErrCategoryNotFound
}
