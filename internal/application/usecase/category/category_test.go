package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID, profile *entity.ProfileType) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID != userID {
			continue
		}
		if profile != nil && category.Profile != *profile {
			continue
		}
		result = append(result, category)
	}
	return result, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func categoryErrorCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected a category error, got %v", err)
	}
	return catErr.Code
}

func TestCreateCategoryUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("creates category with defaults", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID:  userID,
			Name:    "  Groceries  ",
			Type:    entity.TransactionTypeExpense,
			Profile: entity.ProfilePersonal,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Category.Name != "Groceries" {
			t.Errorf("expected trimmed name 'Groceries', got %q", output.Category.Name)
		}
		if output.Category.Color != entity.DefaultCategoryColor {
			t.Errorf("expected default color, got %q", output.Category.Color)
		}
		if output.Category.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected default icon, got %q", output.Category.Icon)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 persisted category, got %d", len(repo.categories))
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID:  userID,
			Name:    "   ",
			Type:    entity.TransactionTypeExpense,
			Profile: entity.ProfilePersonal,
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNameRequired {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryNameRequired, code)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID:  userID,
			Name:    "Groceries",
			Type:    entity.TransactionType("transfer"),
			Profile: entity.ProfilePersonal,
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeInvalidCategoryType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCategoryType, code)
		}
	})
}

func TestListCategoriesUseCase(t *testing.T) {
	userID := uuid.New()
	repo := newFakeCategoryRepo()

	personal := entity.NewCategory(userID, "Groceries", entity.TransactionTypeExpense,
		entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.ProfilePersonal)
	business := entity.NewCategory(userID, "Office", entity.TransactionTypeExpense,
		entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.ProfileBusiness)
	foreign := entity.NewCategory(uuid.New(), "Travel", entity.TransactionTypeExpense,
		entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.ProfilePersonal)
	repo.categories[personal.ID] = personal
	repo.categories[business.ID] = business
	repo.categories[foreign.ID] = foreign

	uc := NewListCategoriesUseCase(repo)

	t.Run("lists only the user's categories", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(output.Categories))
		}
	})

	t.Run("filters by profile", func(t *testing.T) {
		profile := entity.ProfileBusiness
		output, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID, Profile: &profile})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 1 || output.Categories[0].Name != "Office" {
			t.Errorf("expected only the business category, got %d", len(output.Categories))
		}
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes own category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		category := entity.NewCategory(userID, "Groceries", entity.TransactionTypeExpense,
			entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.ProfilePersonal)
		repo.categories[category.ID] = category

		uc := NewDeleteCategoryUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteCategoryInput{UserID: userID, CategoryID: category.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.categories) != 0 {
			t.Errorf("expected category to be removed")
		}
	})

	t.Run("refuses another user's category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		category := entity.NewCategory(uuid.New(), "Groceries", entity.TransactionTypeExpense,
			entity.DefaultCategoryColor, entity.DefaultCategoryIcon, entity.ProfilePersonal)
		repo.categories[category.ID] = category

		uc := NewDeleteCategoryUseCase(repo)
		err := uc.Execute(context.Background(), DeleteCategoryInput{UserID: userID, CategoryID: category.ID})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedCategory {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedCategory, code)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected category to remain")
		}
	})
}
