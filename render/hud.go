package render

import (
	"fmt"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// HUD shows body counts, the anchor position and a zoom readout that fades after each change.
type HUD struct {
	face      text.Face
	zoomFade  *gween.Tween
	zoomAlpha float32
	lastScale float64
	started   bool
}

func NewHUD() (*HUD, error) {
	if !fonts.Loaded(fonts.Regular) {
		if err := fonts.LoadDefault(cfg.HUD.FontSize); err != nil {
			return nil, err
		}
	}
	return &HUD{
		face: text.NewGoXFace(fonts.Regular.Get()),
	}, nil
}

// Update advances the zoom readout fade. dt is in seconds.
func (h *HUD) Update(dt float64, camera components.CameraData) {
	if !h.started || camera.Scale != h.lastScale {
		h.zoomFade = gween.New(1, 0, cfg.HUD.ZoomFadeSeconds, ease.InQuad)
		h.lastScale = camera.Scale
		h.started = true
	}
	if h.zoomFade != nil {
		alpha, done := h.zoomFade.Update(float32(dt))
		h.zoomAlpha = alpha
		if done {
			h.zoomFade = nil
			h.zoomAlpha = 0
		}
	}
}

// HUDInfo is the per-frame data the overlay prints.
type HUDInfo struct {
	Bodies, Visible int
	Anchor          dmath.Vec2
}

func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	margin := cfg.HUD.Margin
	line := cfg.HUD.FontSize * 1.4

	h.drawLine(screen, fmt.Sprintf("bodies %d (%d on screen)", info.Bodies, info.Visible), margin, margin, 1)
	h.drawLine(screen, fmt.Sprintf("anchor %.0f, %.0f", info.Anchor.X, info.Anchor.Y), margin, margin+line, 1)

	if h.zoomAlpha > 0 {
		h.drawLine(screen, fmt.Sprintf("zoom x%.2f", h.lastScale), margin, margin+2*line, h.zoomAlpha)
	}
}

func (h *HUD) drawLine(screen *ebiten.Image, s string, x, y float64, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, h.face, op)
}
