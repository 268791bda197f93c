package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportObject is a rendered report ready to be archived
type ReportObject struct {
	Path        string
	Filename    string // name offered to the browser on download
	ContentType string
	Period      string // human-readable date range, stored as object metadata
	Data        []byte
}

// ReportStorage stores rendered report files and hands out temporary download links
type ReportStorage interface {
	Put(ctx context.Context, obj *ReportObject) error
	Delete(ctx context.Context, objectPath string) error
	PresignDownload(ctx context.Context, objectPath string, filename string, expiry time.Duration) (string, error)
}

// GenerateReportObjectPath creates a unique object path for an archived report,
// grouped by the month it was generated in
func GenerateReportObjectPath(generatedAt time.Time, name string, ext string) string {
	id := uuid.New().String()
	filename := fmt.Sprintf("%s_%s%s", id, name, ext)
	return path.Join("reports", generatedAt.Format("2006"), generatedAt.Format("01"), filename)
}

// AttachmentDisposition builds a Content-Disposition value that makes
// browsers save the report under filename
func AttachmentDisposition(filename string) string {
	filename = strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(filename)
	if filename == "" {
		return "attachment"
	}
	return fmt.Sprintf(`attachment; filename="%s"`, filename)
}
