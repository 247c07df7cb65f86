package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"leskita/internal/config"
	"leskita/internal/domain"
	"leskita/internal/port"
)

// MaterialUploadInput is the DTO for material upload requests.
type MaterialUploadInput struct {
	TenantID    uuid.UUID
	UploadedBy  uuid.UUID
	Title       string
	Description string
	Subject     string
	GradeLevel  string
	IsPublic    bool
	File        multipart.File
	Header      *multipart.FileHeader
}

// UpdateMaterialInput is the DTO for updating material metadata.
type UpdateMaterialInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
	GradeLevel  *string `json:"grade_level"`
	IsPublic    *bool   `json:"is_public"`
}

// MaterialService defines the learning material contract.
type MaterialService interface {
	Upload(ctx context.Context, input MaterialUploadInput) (*domain.Material, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Material, error)
	List(ctx context.Context, tenantID uuid.UUID, subject string, offset, limit int) ([]domain.Material, int, error)
	// GetDownloadURL returns a presigned URL and bumps the download counter.
	GetDownloadURL(ctx context.Context, tenantID, id uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type materialService struct {
	repo    port.MaterialRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewMaterialService creates a new MaterialService implementation.
func NewMaterialService(
	repo port.MaterialRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) MaterialService {
	return &materialService{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *materialService) Upload(ctx context.Context, input MaterialUploadInput) (*domain.Material, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the real content type from the first 512 bytes.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	materialID := uuid.New()
	s3Key := fmt.Sprintf("tenants/%s/materials/%s/%s", input.TenantID, materialID, input.Header.Filename)

	material := &domain.Material{
		ID:          materialID,
		TenantID:    input.TenantID,
		Title:       input.Title,
		Description: input.Description,
		Subject:     input.Subject,
		GradeLevel:  input.GradeLevel,
		FileType:    contentType,
		FileSize:    input.Header.Size,
		S3Bucket:    s.cfg.Bucket,
		S3Key:       s3Key,
		IsPublic:    input.IsPublic,
		UploadedBy:  input.UploadedBy,
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("materialService.Upload: S3 upload failed for material %s: %v", materialID, err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.Create(ctx, material); err != nil {
		// Best effort: do not leave an orphaned object behind.
		_ = s.storage.Delete(ctx, s.cfg.Bucket, s3Key)
		return nil, fmt.Errorf("creating material: %w", err)
	}

	return material, nil
}

func (s *materialService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Material, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *materialService) List(ctx context.Context, tenantID uuid.UUID, subject string, offset, limit int) ([]domain.Material, int, error) {
	return s.repo.List(ctx, tenantID, subject, offset, limit)
}

func (s *materialService) GetDownloadURL(ctx context.Context, tenantID, id uuid.UUID) (string, error) {
	material, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return "", err
	}

	url, err := s.storage.GetPresignedURL(ctx, material.S3Bucket, material.S3Key, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("materialService.GetDownloadURL: %w", err)
	}

	if err := s.repo.IncrementDownloads(ctx, tenantID, id); err != nil {
		log.Printf("materialService.GetDownloadURL: counting download for %s: %v", id, err)
	}
	return url, nil
}

func (s *materialService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	material, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, material.S3Bucket, material.S3Key); err != nil {
		log.Printf("materialService.Delete: deleting object %s/%s: %v", material.S3Bucket, material.S3Key, err)
	}
	return s.repo.Delete(ctx, tenantID, id)
}
