package menuscan

import (
	"context"

	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
)

type (
	ScanRepository interface {
		CreateScan(ctx context.Context, scan *entities.MenuScan) error
		GetScanByID(ctx context.Context, id string) (*entities.MenuScan, error)
		GetScansByRestaurant(ctx context.Context, restaurantID string) ([]*entities.MenuScan, error)
		UpdateScan(ctx context.Context, scan *entities.MenuScan) error
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *entities.MenuScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepository) GetScanByID(ctx context.Context, id string) (*entities.MenuScan, error) {
	var scan entities.MenuScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *scanRepository) GetScansByRestaurant(ctx context.Context, restaurantID string) ([]*entities.MenuScan, error) {
	var scans []*entities.MenuScan
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *scanRepository) UpdateScan(ctx context.Context, scan *entities.MenuScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}
