package isoterra

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// SavePNG writes the image to disk as png
func SavePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// SaveBMP writes the image to disk as bmp
func SaveBMP(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := bmp.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}
