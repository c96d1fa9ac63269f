package services

import (
	"context"
	"fmt"
	"mime"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"communityday/internal/domain"
)

const maxBaseNameLen = 64

// Folders accepted by the media uploader.
var mediaFolders = map[string]struct{}{
	"speakers":   {},
	"sponsors":   {},
	"organizers": {},
	"volunteers": {},
	"gallery":    {},
	"venue":      {},
	"avatars":    {},
	"general":    {},
}

// imageExtensions maps accepted raster types to the extension used in object keys.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const svgType = "image/svg+xml"

// logoFolders additionally accept SVG.
var logoFolders = map[string]struct{}{"sponsors": {}}

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9_-]+`)

type mediaService struct {
	store          domain.ObjectStore
	publicBaseURL  string
	contextTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

// NewMediaService creates a MediaService writing to store. publicBaseURL prefixes every returned URL.
func NewMediaService(store domain.ObjectStore, publicBaseURL string, timeout time.Duration) domain.MediaService {
	return &mediaService{
		store:          store,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		contextTimeout: timeout,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// Upload validates folder, type and size before the store is contacted.
func (s *mediaService) Upload(ctx context.Context, file domain.MediaFile, folder string) (string, error) {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if _, ok := mediaFolders[folder]; !ok {
		return "", invalidf("unknown folder %q", folder)
	}
	contentType, ext, err := allowedType(file.ContentType, folder)
	if err != nil {
		return "", err
	}
	if file.Size > domain.MaxUploadSize {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrFileTooLarge, file.Size, domain.MaxUploadSize)
	}
	if file.Size <= 0 || file.Body == nil {
		return "", invalidf("file is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	key := s.objectKey(folder, file.Filename, ext)
	if err := s.store.PutObject(ctx, key, contentType, file.Body, file.Size); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object behind url. URLs outside the public base URL return domain.ErrInvalidMediaURL.
func (s *mediaService) Delete(ctx context.Context, url string) error {
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.store.DeleteObject(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// objectKey builds <folder>/<unix-millis>-<8 hex>-<name><ext> so two uploads never share a key.
func (s *mediaService) objectKey(folder, filename, ext string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.Trim(unsafeNameChars.ReplaceAllString(strings.ToLower(base), "-"), "-")
	if len(base) > maxBaseNameLen {
		base = strings.TrimRight(base[:maxBaseNameLen], "-")
	}
	if base == "" {
		base = "file"
	}
	id := strings.ReplaceAll(s.newID(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return folder + "/" + strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + id + "-" + base + ext
}

func (s *mediaService) keyFromURL(url string) (string, error) {
	prefix := s.publicBaseURL + "/"
	if s.publicBaseURL == "" || !strings.HasPrefix(url, prefix) {
		return "", domain.ErrInvalidMediaURL
	}
	key := strings.TrimPrefix(url, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if key == "" || strings.Contains(key, "..") {
		return "", domain.ErrInvalidMediaURL
	}
	return key, nil
}

// allowedType returns the normalized media type and key extension, or domain.ErrUnsupportedMediaType.
func allowedType(declared, folder string) (string, string, error) {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnsupportedMediaType, declared)
	}
	if ext, ok := imageExtensions[mediaType]; ok {
		return mediaType, ext, nil
	}
	if mediaType == svgType {
		if _, ok := logoFolders[folder]; ok {
			return mediaType, ".svg", nil
		}
	}
	return "", "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, mediaType)
}
