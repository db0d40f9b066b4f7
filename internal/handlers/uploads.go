package handlers

import (
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveImage stores an optional multipart image upload under the media
// root and returns its media-relative path. The stored name keeps the
// original filename with a random prefix so references stay readable
// without colliding. A request without an image returns "".
func (h *Handlers) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// no file field in the submission
		return "", nil
	}

	name := uuid.New().String()[:8] + "_" + filepath.Base(file.Filename)
	rel := path.Join("posts", name)

	dst := filepath.Join(h.cfg.Media.Root, "posts", name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return rel, nil
}
