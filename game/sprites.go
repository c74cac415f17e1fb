package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"arenasurvivor/sim"
)

var (
	//go:embed assets/player.svg
	playerSVG []byte

	//go:embed assets/grunt.svg
	gruntSVG []byte

	//go:embed assets/boss.svg
	bossSVG []byte
)

// Sprites are the actor images, rasterized once at the on-screen size of
// each hitbox.
type Sprites struct {
	Player *ebiten.Image
	Grunt  *ebiten.Image
	Boss   *ebiten.Image
}

// LoadSprites rasterizes the embedded SVGs for the hitbox sizes in cfg at the
// given zoom.
func LoadSprites(cfg sim.Config, zoom float64) (*Sprites, error) {
	s := &Sprites{}
	specs := []struct {
		name string
		data []byte
		size float64
		dst  **ebiten.Image
	}{
		{"player", playerSVG, cfg.Player.Size, &s.Player},
		{"grunt", gruntSVG, cfg.Basic.Size, &s.Grunt},
		{"boss", bossSVG, cfg.Boss.Size, &s.Boss},
	}

	for _, spec := range specs {
		px := max(int(math.Ceil(spec.size*zoom)), 1)
		img, err := rasterizeSVG(spec.data, px, px)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", spec.name, err)
		}
		*spec.dst = ebiten.NewImageFromImage(img)
	}
	return s, nil
}

// rasterizeSVG renders SVG data into a width x height image.
func rasterizeSVG(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
