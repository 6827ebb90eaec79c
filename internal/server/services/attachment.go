package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
)

const (
	defaultPhotoExt = ".png"
	presignTTL      = 15 * time.Minute
)

// ProfilePhotoLabel names a user's photo "<user_id>_profile_photo.<ext>",
// taking the extension from filename.
func ProfilePhotoLabel(userID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" || ext == "." {
		ext = defaultPhotoExt
	}
	return userID + "_profile_photo" + ext
}

// AttachmentService manages the single profile photo each user may have.
type AttachmentService struct {
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	logger      logging.Logger
}

func NewAttachmentService(m repomanager.RepositoryManager, blobs blobstore.Store, logger logging.Logger) *AttachmentService {
	return &AttachmentService{repomanager: m, blobs: blobs, logger: logger}
}

// Replace stores data as the user's photo and returns the new reference.
//
// The previous blob is deleted before the new one is written. If the write
// then fails the user keeps the old reference, which may already point at
// nothing; fetching it reports common.ErrorNotFound.
func (s *AttachmentService) Replace(ctx context.Context, userID string, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", common.ErrValidation)
	}

	repo := s.repomanager.Users()

	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		return "", storageError("loading user", err)
	}

	if u.AttachmentRef != "" {
		err := s.blobs.Delete(ctx, u.AttachmentRef)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return "", storageError("deleting previous photo", err)
		}
	}

	label := ProfilePhotoLabel(userID, filename)
	ref, err := s.blobs.Put(ctx, label, http.DetectContentType(data), data)
	if err != nil {
		if u.AttachmentRef != "" {
			s.logger.Warn(ctx, "photo write failed after previous photo was deleted",
				"user_id", userID, "stale_ref", u.AttachmentRef, "error", err)
		}
		return "", fmt.Errorf("%w: storing photo: %v", common.ErrStorage, err)
	}

	if err := repo.SetAttachmentRef(ctx, userID, ref); err != nil {
		if derr := s.blobs.Delete(ctx, ref); derr != nil {
			s.logger.Warn(ctx, "orphaned photo blob", "ref", ref, "error", derr)
		}
		return "", storageError("saving photo reference", err)
	}

	s.logger.Info(ctx, "profile photo replaced", "user_id", userID, "ref", ref, "bytes", len(data))
	return ref, nil
}

// Fetch loads a stored blob by reference.
func (s *AttachmentService) Fetch(ctx context.Context, ref string) (*models.Attachment, error) {
	if ref == "" {
		return nil, common.ErrorNotFound
	}
	a, err := s.blobs.Get(ctx, ref)
	if err != nil {
		return nil, storageError("fetching photo", err)
	}
	return a, nil
}

// FetchForUser loads the user's current photo.
func (s *AttachmentService) FetchForUser(ctx context.Context, userID string) (*models.Attachment, error) {
	u, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, storageError("loading user", err)
	}
	return s.Fetch(ctx, u.AttachmentRef)
}

// PresignedURL returns a short-lived direct download link for the user's
// photo. Only stores implementing blobstore.URLSigner support it.
func (s *AttachmentService) PresignedURL(ctx context.Context, userID string) (string, error) {
	signer, ok := s.blobs.(blobstore.URLSigner)
	if !ok {
		return "", common.ErrUnsupported
	}

	u, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		return "", storageError("loading user", err)
	}
	if u.AttachmentRef == "" {
		return "", common.ErrorNotFound
	}

	url, err := signer.PresignGet(ctx, u.AttachmentRef, presignTTL)
	if err != nil {
		if errors.Is(err, common.ErrUnsupported) {
			return "", err
		}
		return "", fmt.Errorf("%w: signing url: %v", common.ErrStorage, err)
	}
	return url, nil
}
