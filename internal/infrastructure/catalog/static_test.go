package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
)

func TestStaticListCategoriesOrder(t *testing.T) {
	repo := NewStaticCatalogRepository()
	cats, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("static catalog is empty")
	}
	if cats[0].Key != "maintenance" {
		t.Errorf("expected first category maintenance, got %s", cats[0].Key)
	}
	for _, c := range cats {
		if c.Label == "" {
			t.Errorf("category %s has empty label", c.Key)
		}
	}
}

func TestStaticListServicesIdempotent(t *testing.T) {
	repo := NewStaticCatalogRepository()
	first, err := repo.ListServices(context.Background(), "maintenance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.ListServices(context.Background(), "maintenance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs: %v vs %v", i, first[i], second[i])
		}
	}
	if first[0].Key != "electrician" {
		t.Errorf("expected first service electrician, got %s", first[0].Key)
	}
}

func TestStaticListServicesUnknownCategory(t *testing.T) {
	repo := NewStaticCatalogRepository()
	_, err := repo.ListServices(context.Background(), "gardening")
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
