package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService initializes the Drive client from a service
// account, either a credentials file (GOOGLE_DRIVE_CREDENTIALS_PATH) or
// the raw JSON (GOOGLE_DRIVE_CREDENTIALS_JSON).
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		ctx := context.Background()

		var credsBytes []byte
		if path := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				initErr = fmt.Errorf("reading Drive credentials file: %w", err)
				return
			}
			credsBytes = raw
		} else if raw := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"); raw != "" {
			credsBytes = []byte(raw)
		} else {
			initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH or GOOGLE_DRIVE_CREDENTIALS_JSON must be set")
			return
		}

		creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("loading Drive credentials: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("creating Drive service: %w", err)
			return
		}

		log.Printf("[GOOGLE_DRIVE] Service initialized")
	})
	return initErr
}

// GetGoogleDriveService returns the Drive client, initializing it lazily.
func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL pulls the file id out of the usual Drive URL shapes.
func ExtractFileIDFromURL(url string) (string, error) {
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,
		`id=([a-zA-Z0-9_-]+)`,
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("could not extract a file id from URL: %s", url)
}

// DownloadFileFromGoogleDrive streams a Drive file. The caller owns the
// returned body.
func DownloadFileFromGoogleDrive(fileID string) (io.ReadCloser, string, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, "", err
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, "", fmt.Errorf("fetching file metadata: %w", err)
	}

	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, "", fmt.Errorf("Drive folders cannot be downloaded directly")
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("downloading file: %w", err)
	}

	log.Printf("[GOOGLE_DRIVE] Downloaded %s (%d bytes)", file.Name, file.Size)

	return resp.Body, file.Name, nil
}

// IsGoogleDriveURL reports whether a URL points at Google Drive.
func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
