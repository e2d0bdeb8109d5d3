package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pickup-market/shop-svc/internal/domain"
	"pickup-market/shop-svc/internal/mocks"
	"pickup-market/shop-svc/internal/service"
)

func TestShopCreateAssignsIDAndPrepDefault(t *testing.T) {
	repo := mocks.NewShopRepository(t)
	svc := service.NewShopService(repo)

	repo.On("CreateShop", mock.Anything, mock.AnythingOfType("*domain.Shop")).Return(nil).Once()

	shop := &domain.Shop{Name: "Han River Kitchen"}
	assert.NoError(t, svc.Create(context.Background(), shop))
	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, service.DefaultPrepMinutes, shop.AvgPrepTime)
}

func TestShopCreateRejectsEmptyName(t *testing.T) {
	svc := service.NewShopService(mocks.NewShopRepository(t))

	err := svc.Create(context.Background(), &domain.Shop{})
	assert.ErrorIs(t, err, service.ErrInvalidShop)
}

func TestShopGetMapsNoRows(t *testing.T) {
	repo := mocks.NewShopRepository(t)
	svc := service.NewShopService(repo)

	repo.On("GetShop", mock.Anything, "missing").Return(nil, sql.ErrNoRows).Once()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrShopNotFound)
}

func TestShopSetOpen(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "shop exists", affected: 1, wantErr: nil},
		{name: "shop missing", affected: 0, wantErr: service.ErrShopNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewShopRepository(t)
			svc := service.NewShopService(repo)

			repo.On("SetShopOpen", mock.Anything, "shop-1", true).Return(testCase.affected, nil).Once()

			err := svc.SetOpen(context.Background(), "shop-1", true)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPickupSlotsUsesShopPrepTime(t *testing.T) {
	repo := mocks.NewShopRepository(t)
	svc := service.NewShopService(repo)

	repo.On("GetShop", mock.Anything, "shop-1").Return(&domain.Shop{
		ID: "shop-1", Name: "Han River Kitchen", AvgPrepTime: 20,
	}, nil).Once()

	now := time.Date(2026, 3, 14, 10, 2, 0, 0, time.UTC)
	slots, err := svc.PickupSlots(context.Background(), "shop-1", now, nil)

	assert.NoError(t, err)
	assert.Len(t, slots, service.DefaultSlotCount)
	assert.Equal(t, "10:25", slots[0].Time)
	assert.True(t, slots[0].IsEarliest)
}

func TestPickupSlotsShopMissing(t *testing.T) {
	repo := mocks.NewShopRepository(t)
	svc := service.NewShopService(repo)

	repo.On("GetShop", mock.Anything, "missing").Return(nil, sql.ErrNoRows).Once()

	_, err := svc.PickupSlots(context.Background(), "missing", time.Now(), nil)
	assert.ErrorIs(t, err, service.ErrShopNotFound)
}

func TestMenuCreateItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.MenuItem
		wantErr bool
	}{
		{
			name:    "valid",
			item:    domain.MenuItem{CategoryID: "cat-1", Name: "Bulgogi Bowl", Price: 9000},
			wantErr: false,
		},
		{
			name:    "missing category",
			item:    domain.MenuItem{Name: "Bulgogi Bowl", Price: 9000},
			wantErr: true,
		},
		{
			name:    "negative price",
			item:    domain.MenuItem{CategoryID: "cat-1", Name: "Bulgogi Bowl", Price: -100},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			svc := service.NewMenuService(repo)
			if !testCase.wantErr {
				repo.On("CreateMenuItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
			}

			err := svc.CreateItem(context.Background(), &testCase.item)
			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidMenuItem)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, testCase.item.ID)
			}
		})
	}
}

func TestMenuListItemsAttachesOptions(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	repo.On("ListMenuItems", mock.Anything, "shop-1").Return([]domain.MenuItem{
		{ID: "item-1", Name: "Bulgogi Bowl", Price: 9000},
	}, nil).Once()
	repo.On("ListOptions", mock.Anything, "item-1").Return([]domain.MenuOption{
		{ID: "opt-1", ItemID: "item-1", Name: "Extra rice", PriceModifier: 1000},
	}, nil).Once()

	items, err := svc.ListItems(context.Background(), "shop-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, items[0].Options, 1)
	assert.Equal(t, 1000, items[0].Options[0].PriceModifier)
}

func TestMenuSetSoldOutMissingItem(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	repo.On("SetSoldOut", mock.Anything, "missing", true).Return(int64(0), nil).Once()

	err := svc.SetSoldOut(context.Background(), "missing", true)
	assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
}

func TestMenuRepoErrorPassthrough(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	dbErr := errors.New("connection refused")
	repo.On("ListMenuItems", mock.Anything, "shop-1").Return(nil, dbErr).Once()

	_, err := svc.ListItems(context.Background(), "shop-1")
	assert.ErrorIs(t, err, dbErr)
}
