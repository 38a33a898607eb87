package menuscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/domain"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/entities"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/logging"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/storage"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/ai"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dish"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/restaurant"
)

// Scan lifecycle states.
const (
	ScanStatusPending   = "pending"
	ScanStatusDetected  = "detected"
	ScanStatusFailed    = "failed"
	ScanStatusCompleted = "completed"
)

type (
	ScanService interface {
		UploadMenuPhoto(ctx context.Context, restaurantID string, ownerID string, photo *multipart.FileHeader) (domain.UploadMenuPhotoResponse, error)
		GetScan(ctx context.Context, restaurantID string, scanID string, ownerID string) (domain.UploadMenuPhotoResponse, error)
		ConfirmScan(ctx context.Context, restaurantID string, scanID string, ownerID string, req domain.ConfirmScanRequest) (domain.ConfirmScanResponse, error)
	}

	scanService struct {
		scanRepository    ScanRepository
		dishRepository    dish.DishRepository
		dishService       dish.DishService
		restaurantService restaurant.RestaurantService
		aiClient          ai.Client
		awsS3             storage.AwsS3
	}
)

func NewScanService(
	scanRepository ScanRepository,
	dishRepository dish.DishRepository,
	dishService dish.DishService,
	restaurantService restaurant.RestaurantService,
	aiClient ai.Client,
	awsS3 storage.AwsS3,
) ScanService {
	return &scanService{
		scanRepository:    scanRepository,
		dishRepository:    dishRepository,
		dishService:       dishService,
		restaurantService: restaurantService,
		aiClient:          aiClient,
		awsS3:             awsS3,
	}
}

func (s *scanService) UploadMenuPhoto(ctx context.Context, restaurantID string, ownerID string, photo *multipart.FileHeader) (domain.UploadMenuPhotoResponse, error) {
	owned, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID)
	if err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}

	imageData, mimeType, err := readUpload(photo)
	if err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}

	scan := &entities.MenuScan{
		ID:           uuid.New(),
		RestaurantID: owned.ID,
		Status:       ScanStatusPending,
	}

	// The archive copy is best effort; detection proceeds without it.
	objectKey, uploadErr := s.awsS3.UploadFile(
		fmt.Sprintf("menu-scan-%s", scan.ID.String()),
		photo,
		fmt.Sprintf("menu-scans/%s", restaurantID),
		storage.AllowImage...,
	)
	if uploadErr != nil {
		logging.LogWarn("menu photo archive upload failed", zap.Error(uploadErr))
	} else {
		scan.ImageURL = s.awsS3.GetPublicLinkKey(objectKey)
	}

	if err := s.scanRepository.CreateScan(ctx, scan); err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}

	detections, err := s.aiClient.DetectDishes(ctx, imageData, mimeType)
	if err != nil {
		logging.LogWarn("dish detection failed", zap.Error(err))
		scan.Status = ScanStatusFailed
		if saveErr := s.scanRepository.UpdateScan(ctx, scan); saveErr != nil {
			return domain.UploadMenuPhotoResponse{}, saveErr
		}
		return toScanResponse(scan, nil), nil
	}

	catalog, err := s.dishRepository.GetDishes(ctx, restaurantID)
	if err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}
	detected := matchAgainstCatalog(detections, catalog)

	encoded, err := json.Marshal(detected)
	if err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}
	scan.Status = ScanStatusDetected
	scan.DetectedItems = string(encoded)
	if err := s.scanRepository.UpdateScan(ctx, scan); err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}

	return toScanResponse(scan, detected), nil
}

func (s *scanService) GetScan(ctx context.Context, restaurantID string, scanID string, ownerID string) (domain.UploadMenuPhotoResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}

	scan, err := s.getOwnedScan(ctx, restaurantID, scanID)
	if err != nil {
		return domain.UploadMenuPhotoResponse{}, err
	}

	return toScanResponse(scan, decodeDetected(scan)), nil
}

func (s *scanService) ConfirmScan(ctx context.Context, restaurantID string, scanID string, ownerID string, req domain.ConfirmScanRequest) (domain.ConfirmScanResponse, error) {
	if _, err := s.restaurantService.RequireOwned(ctx, restaurantID, ownerID); err != nil {
		return domain.ConfirmScanResponse{}, err
	}

	scan, err := s.getOwnedScan(ctx, restaurantID, scanID)
	if err != nil {
		return domain.ConfirmScanResponse{}, err
	}
	if scan.Status == ScanStatusCompleted {
		return domain.ConfirmScanResponse{}, domain.ErrScanAlreadyResolved
	}
	if scan.Status != ScanStatusDetected {
		return domain.ConfirmScanResponse{}, domain.ErrScanNotDetected
	}

	var result domain.ConfirmScanResponse
	for _, item := range req.Items {
		switch item.Resolution {
		case domain.ScanResolutionSkip:
			result.Skipped++

		case domain.ScanResolutionCreate:
			if _, err := s.dishService.AddDish(ctx, restaurantID, ownerID, domain.AddDishRequest{
				Name:        item.Name,
				Category:    item.Category,
				Price:       item.Price,
				Description: item.Description,
			}); err != nil {
				return result, err
			}
			result.Created++

		case domain.ScanResolutionUpdate:
			price := item.Price
			updateReq := domain.UpdateDishRequest{
				Name:        item.Name,
				Category:    item.Category,
				Price:       &price,
				Description: item.Description,
			}
			if _, err := s.dishService.UpdateDish(ctx, restaurantID, item.DishID, ownerID, updateReq); err != nil {
				return result, err
			}
			result.Updated++
		}
	}

	scan.Status = ScanStatusCompleted
	if err := s.scanRepository.UpdateScan(ctx, scan); err != nil {
		return result, err
	}
	return result, nil
}

func (s *scanService) getOwnedScan(ctx context.Context, restaurantID string, scanID string) (*entities.MenuScan, error) {
	scan, err := s.scanRepository.GetScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScanNotFound
		}
		return nil, err
	}
	if scan.RestaurantID.String() != restaurantID {
		return nil, domain.ErrScanNotFound
	}
	return scan, nil
}

// matchAgainstCatalog annotates each detection with the closest existing
// dish when its name similarity clears the match threshold.
func matchAgainstCatalog(detections []ai.DetectedDish, catalog []*entities.Dish) []domain.ScannedDish {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}

	detected := make([]domain.ScannedDish, 0, len(detections))
	for _, detection := range detections {
		item := domain.ScannedDish{
			Name:        detection.Name,
			Category:    detection.Category,
			Price:       detection.Price,
			Description: detection.Description,
		}
		if match, ok := BestMatch(detection.Name, names, DefaultMatchThreshold); ok {
			item.MatchedDishID = catalog[match.Index].ID.String()
			item.MatchedDishName = catalog[match.Index].Name
			item.MatchScore = match.Score
		}
		detected = append(detected, item)
	}
	return detected
}

func decodeDetected(scan *entities.MenuScan) []domain.ScannedDish {
	if scan.DetectedItems == "" {
		return nil
	}
	var detected []domain.ScannedDish
	if err := json.Unmarshal([]byte(scan.DetectedItems), &detected); err != nil {
		logging.LogWarn("stored scan items could not be decoded", zap.Error(err))
		return nil
	}
	return detected
}

func toScanResponse(scan *entities.MenuScan, detected []domain.ScannedDish) domain.UploadMenuPhotoResponse {
	if detected == nil {
		detected = []domain.ScannedDish{}
	}
	return domain.UploadMenuPhotoResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
		Detected: detected,
	}
}

func readUpload(photo *multipart.FileHeader) ([]byte, string, error) {
	file, err := photo.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data := make([]byte, photo.Size)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, "", err
	}

	mimeType := photo.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}
