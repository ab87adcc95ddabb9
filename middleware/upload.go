package middleware

import (
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/st10253994/INSY7315-API/config"
)

// ContextUploadsKey holds the []UploadedFile produced by the upload
// middleware. Handlers only ever see resulting URLs, never file bytes.
const ContextUploadsKey = "uploadedFiles"

// Cloudinary folders per upload kind.
const (
	FolderListings       = "listings"
	FolderProfilePicture = "profilePicture"
	FolderBookingImages  = "BookingImages"
	FolderBookingFiles   = "bookingFiles"
	FolderMaintenance    = "Maintenance"
)

// UploadedFile is the stored result of one Cloudinary upload.
type UploadedFile struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Upload streams the multipart files under field to Cloudinary before the
// handler runs. An empty folder selects BookingImages or bookingFiles by
// mimetype. Requests without files pass through with no uploads.
func Upload(field, folder string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			form, err := c.MultipartForm()
			if err != nil || form == nil || len(form.File[field]) == 0 {
				c.Set(ContextUploadsKey, []UploadedFile{})
				return next(c)
			}

			uploads := make([]UploadedFile, 0, len(form.File[field]))
			for _, fileHeader := range form.File[field] {
				uploaded, err := uploadOne(c, fileHeader, folder)
				if err != nil {
					log.Printf("upload: %s: %v", fileHeader.Filename, err)
					return c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "Failed to upload file",
					})
				}
				uploads = append(uploads, uploaded)
			}

			c.Set(ContextUploadsKey, uploads)
			return next(c)
		}
	}
}

func uploadOne(c echo.Context, fileHeader *multipart.FileHeader, folder string) (UploadedFile, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return UploadedFile{}, err
	}
	defer src.Close()

	if folder == "" {
		if strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
			folder = FolderBookingImages
		} else {
			folder = FolderBookingFiles
		}
	}

	name := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	publicID := name + "-" + uuid.NewString()[:8]

	result, err := config.Cloudinary().Upload.Upload(c.Request().Context(), src, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return UploadedFile{}, err
	}

	return UploadedFile{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// UploadedURLs reads the upload results from the request context.
func UploadedURLs(c echo.Context) []string {
	files, ok := c.Get(ContextUploadsKey).([]UploadedFile)
	if !ok {
		return nil
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		urls = append(urls, f.URL)
	}
	return urls
}
