package card

import (
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

// GenerateQR encodes content as a size x size QR code image.
func GenerateQR(content string, size int) (image.Image, error) {
	if content == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "auction URL is empty")
	}
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "QR size %d must be positive", size)
	}

	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode QR code")
	}

	img := q.Image(size)
	// go-qrcode returns a larger image when size is below the symbol's minimum.
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		img = imaging.Resize(img, size, size, imaging.NearestNeighbor)
	}
	return img, nil
}
