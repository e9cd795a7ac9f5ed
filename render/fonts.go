package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces caches one GoTextFace per point size over a shared source.
type Faces struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func NewFaces() (*Faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Faces{source: src, faces: map[float64]*text.GoTextFace{}}, nil
}

func (f *Faces) Face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = defaultFontSize
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size * fontScale}
	f.faces[size] = face
	return face
}

const (
	defaultFontSize = 36
	// Label sizes are given as line heights; GoTextFace sizes are em sizes.
	fontScale = 0.75
)
