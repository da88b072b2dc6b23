// file: internals/helpers/upload_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxPhotoBytes = 5 * 1024 * 1024 // 5MB
	maxPhotoEdge  = 1600            // px, sisi terpanjang setelah resize
)

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

func init() {
	// webp decoder tidak auto-register seperti jpeg/png
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}

// UploadPhoto terima foto dari form (jpeg/png/webp, max 5MB), kecilkan,
// re-encode ke webp, lalu upload ke storage. Return public URL.
func UploadPhoto(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxPhotoBytes {
		return "", NewValidation("photo", fmt.Sprintf("ukuran foto melebihi 5MB (%dKB)", fileHeader.Size/1024))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedPhotoTypes[contentType]; !ok {
		return "", NewValidation("photo", "tipe foto harus jpeg, png, atau webp")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file foto: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", NewValidation("photo", "file foto tidak bisa dibaca sebagai gambar")
	}

	// resize biar storage tidak penuh file kamera mentah
	b := img.Bounds()
	if b.Dx() > maxPhotoEdge || b.Dy() > maxPhotoEdge {
		img = imaging.Fit(img, maxPhotoEdge, maxPhotoEdge, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename) + ".webp"
	if err := UploadToSupabase("image", filename, "image/webp", buf); err != nil {
		return "", fmt.Errorf("upload foto gagal: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("SUPABASE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

// sanitizeFilename hapus karakter selain huruf, angka, titik, dash, underscore
func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}

func UploadToSupabase(bucket, filename, contentType string, data *bytes.Buffer) error {
	supabaseURL := os.Getenv("SUPABASE_PROJECT_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, uploadURL, data)
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
