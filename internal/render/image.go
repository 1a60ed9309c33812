package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	termimg "github.com/blacktop/go-termimg"
)

// ImageProtocol selects how RenderClipboardImage encodes a decoded image,
// mirroring go-termimg's protocol cascade: prefer a real terminal graphics
// protocol, fall back to ANSI halfblocks everywhere else.
type ImageProtocol int

const (
	ImageProtocolAuto ImageProtocol = iota
	ImageProtocolKitty
	ImageProtocolITerm2
	ImageProtocolSixel
	ImageProtocolHalfblocks
)

// RenderClipboardImage decodes raw image bytes (as cached by
// internal/clipboard's imageCache) and renders them at the given cell
// size for the clipboard history preview pane. Kitty/iTerm2/Sixel render
// via go-termimg; anything else (including ImageProtocolAuto with no
// terminal support) falls back to a pure-Go halfblock renderer so the
// preview never goes blank on an unsupported terminal.
func RenderClipboardImage(data []byte, proto ImageProtocol, widthCells, heightCells int) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode clipboard image: %w", err)
	}

	switch proto {
	case ImageProtocolKitty:
		return renderTermimg(img, termimg.Kitty, widthCells, heightCells)
	case ImageProtocolITerm2:
		return renderTermimg(img, termimg.ITerm2, widthCells, heightCells)
	case ImageProtocolSixel:
		return renderTermimg(img, termimg.Sixel, widthCells, heightCells)
	default:
		return renderHalfblocks(img, widthCells, heightCells)
	}
}

func renderTermimg(img image.Image, proto termimg.Protocol, widthCells, heightCells int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}

// renderHalfblocks renders img using upper-half-block characters, two
// vertical source pixels per terminal cell, so every terminal gets a
// usable clipboard image preview regardless of graphics protocol support.
func renderHalfblocks(img image.Image, widthCells, heightCells int) (string, error) {
	small := resizeNearest(img, widthCells, heightCells*2)
	bounds := small.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return "", nil
	}

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			topR, topG, topB, topA := small.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			var botR, botG, botB, botA uint32
			if y+1 < h {
				botR, botG, botB, botA = small.At(bounds.Min.X+x, bounds.Min.Y+y+1).RGBA()
			}
			switch {
			case topA == 0 && botA == 0:
				b.WriteString("\x1b[0m ")
			case topA == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", botR>>8, botG>>8, botB>>8)
			case botA == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", topR>>8, topG>>8, topB>>8)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					topR>>8, topG>>8, topB>>8, botR>>8, botG>>8, botB>>8)
			}
		}
	}
	b.WriteString("\x1b[0m")
	return b.String(), nil
}

// resizeNearest does a minimal nearest-neighbor resize; the clipboard
// preview doesn't need the quality ResizeToFit gives full-size images.
func resizeNearest(src image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return src
	}
	bounds := src.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	if sw <= 0 || sh <= 0 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := bounds.Min.Y + y*sh/h
		for x := 0; x < w; x++ {
			sx := bounds.Min.X + x*sw/w
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
