package supabase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	storage "github.com/supabase-community/storage-go"
)

// PhotoFolder is the logical bucket prefix all pet photos live under.
// Uploaded files are named "<orderID>_<timestamp>_<original name>"; the part
// before the first underscore is the only link back to an order, so a file
// that breaks the convention is treated as unowned.
const PhotoFolder = "pet-photos"

// photoListLimit caps a single bucket listing call.
const photoListLimit = 500

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9.-]`)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(client *Client) *StorageClient {
	baseURL := strings.TrimSuffix(client.Config.SupabaseURL, "/")

	return &StorageClient{
		client:  client.Supabase.Storage,
		bucket:  client.Config.SupabaseBucket,
		baseURL: baseURL,
	}
}

func (s *StorageClient) Bucket() string {
	return s.bucket
}

// ListPetPhotos returns the bucket objects under the photo folder, at most
// photoListLimit of them, in whatever order the provider yields.
func (s *StorageClient) ListPetPhotos() ([]storage.FileObject, error) {
	files, err := s.client.ListFiles(s.bucket, PhotoFolder, storage.FileSearchOptions{
		Limit: photoListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", PhotoFolder, err)
	}
	return files, nil
}

// CreateSignedUploadURL mints a time-limited URL the browser uploads to
// directly. The returned URL is absolute.
func (s *StorageClient) CreateSignedUploadURL(filePath string) (string, error) {
	resp, err := s.client.CreateSignedUploadUrl(s.bucket, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create signed upload url: %w", err)
	}

	signedURL := resp.Url
	if strings.HasPrefix(signedURL, "/") {
		signedURL = s.baseURL + "/storage/v1" + signedURL
	}
	return signedURL, nil
}

// PublicURL builds the predictable public address of a stored object.
func (s *StorageClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

// PhotoPublicURL is PublicURL for an object name inside the photo folder.
func (s *StorageClient) PhotoPublicURL(fileName string) string {
	return s.PublicURL(PhotoFolder + "/" + fileName)
}

// PetPhotoPath builds the object path for a new upload. The identifier is
// the order id when known, falling back to the wizard session id.
func PetPhotoPath(identifier, fileName string) string {
	return fmt.Sprintf("%s/%s_%d_%s", PhotoFolder, identifier, time.Now().UnixMilli(), SanitizeFileName(fileName))
}

// SanitizeFileName lowercases the name, replaces anything outside
// [a-z0-9.-] with underscores and truncates to 100 characters.
func SanitizeFileName(name string) string {
	sanitized := unsafeFileChars.ReplaceAllString(strings.ToLower(name), "_")
	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	return sanitized
}
