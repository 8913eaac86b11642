package wechat

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// 公众号封面图有体积限制，统一压到不超过此宽度
const coverMaxWidth = 900

// normalizeCover 把封面图转成宽度受控的 JPEG，返回转换后的临时文件路径
func normalizeCover(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", err
	}

	if img.Bounds().Dx() > coverMaxWidth {
		img = imaging.Resize(img, coverMaxWidth, 0, imaging.Lanczos)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(os.TempDir(), "wechat_cover_"+name+".jpg")
	if err := imaging.Save(img, out, imaging.JPEGQuality(85)); err != nil {
		return "", err
	}

	return out, nil
}
