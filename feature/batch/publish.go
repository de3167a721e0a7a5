package batch

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// publish uploads the folder's two output tables to object storage.
// Publishing is best-effort: a failed upload is logged and never fails the
// folder, the local outputs are already on disk.
func (o *Orchestrator) publish(ctx context.Context, folder, dir string, l *zap.Logger) {
	for _, name := range []string{DailyFile, SummaryFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			l.Warn("Failed to read report for publishing", zap.String("file", name), zap.Error(err))
			continue
		}

		objectName := path.Join(folder, name)
		_, err = o.store.PutObject(ctx, o.bucket, objectName, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "text/csv"})
		if err != nil {
			l.Warn("Failed to publish report", zap.String("object", objectName), zap.Error(err))
			continue
		}
		l.Info("Published report", zap.String("object", objectName))
	}
}
