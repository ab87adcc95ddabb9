package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

var cld *cloudinary.Cloudinary

// InitCloudinary sets up the upload client. Prefers CLOUDINARY_URL, falls
// back to the individual credential variables.
func InitCloudinary() {
	var err error
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		cld, err = cloudinary.NewFromURL(url)
	} else {
		cld, err = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
	}
	if err != nil {
		log.Fatalf("Failed to configure Cloudinary: %v", err)
	}
}

// Cloudinary returns the shared upload client.
func Cloudinary() *cloudinary.Cloudinary {
	return cld
}
