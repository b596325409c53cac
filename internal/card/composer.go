// Package card renders one auction item onto its template image.
package card

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/rptomey/silent-auction-card-generator/internal/config"
	"github.com/rptomey/silent-auction-card-generator/internal/layout"
	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
	"github.com/rptomey/silent-auction-card-generator/pkg/logger"
	"github.com/rptomey/silent-auction-card-generator/pkg/models"
	"github.com/rptomey/silent-auction-card-generator/pkg/utils"
)

// Result is the outcome of rendering one item: Card on success, Err otherwise.
type Result struct {
	Item models.ItemRecord
	Card *models.RenderedCard
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Card != nil
}

// Composer renders cards from a read-only config. It holds no per-item state,
// so one Composer may serve several goroutines.
type Composer struct {
	cfg       *config.Config
	outputDir string
	logger    *logger.Logger
}

func NewComposer(cfg *config.Config, outputDir string, logger *logger.Logger) (*Composer, error) {
	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Composer{
		cfg:       cfg,
		outputDir: outputDir,
		logger:    logger,
	}, nil
}

func (c *Composer) OutputDir() string {
	return c.outputDir
}

// Render draws and saves the card for item. Failures are logged with the item
// name and returned in the Result; they never abort the caller.
func (c *Composer) Render(ctx context.Context, item models.ItemRecord) (res Result) {
	c.logger.Info("Generating card for: %s", item.Name)

	defer func() {
		if r := recover(); r != nil {
			res = Result{Item: item, Err: errors.New(errors.ErrCodeRenderFailed, "panic while rendering: %v", r)}
			c.logger.Error("Error processing %s: %v", item.Name, res.Err)
		}
	}()

	card, err := c.render(ctx, item)
	if err != nil {
		c.logger.Error("Error processing %s (row %d): %v", item.Name, item.Row, err)
		return Result{Item: item, Err: err}
	}

	c.logger.Debug("Saved %s for %s", card.Filename, item.Name)
	return Result{Item: item, Card: card}
}

func (c *Composer) render(ctx context.Context, item models.ItemRecord) (*models.RenderedCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(item.Name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "item name is empty")
	}

	tc, err := c.cfg.Template(item.TemplateID)
	if err != nil {
		return nil, err
	}

	templatePath, err := utils.ResolveResource(c.cfg.TemplatesDir, item.TemplateID, "template image")
	if err != nil {
		return nil, err
	}
	itemFontPath, err := utils.ResolveResource(c.cfg.FontsDir, tc.ItemFont, "font")
	if err != nil {
		return nil, err
	}
	bidFontPath, err := utils.ResolveResource(c.cfg.FontsDir, tc.BidFont, "font")
	if err != nil {
		return nil, err
	}

	background, err := imaging.Open(templatePath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "open template %s", templatePath)
	}

	qr, err := GenerateQR(item.AuctionURL, tc.QRSize)
	if err != nil {
		return nil, err
	}

	itemFont, err := LoadFont(itemFontPath)
	if err != nil {
		return nil, err
	}
	bidFont := itemFont
	if bidFontPath != itemFontPath {
		if bidFont, err = LoadFont(bidFontPath); err != nil {
			return nil, err
		}
	}

	dc := gg.NewContextForImage(background)
	dc.SetHexColor(c.cfg.TextColor)

	size, overflow, err := c.drawItemName(dc, itemFont, tc, item.Name)
	if err != nil {
		return nil, err
	}
	if err := c.drawBid(dc, bidFont, tc, item.StartingBid); err != nil {
		return nil, err
	}

	// Templates may carry transparency, so the QR is blended rather than copied.
	out := imaging.Overlay(dc.Image(), qr, image.Pt(tc.QRPosition.X, tc.QRPosition.Y), 1.0)

	filename := utils.CardFilename(item.Name, item.TemplateID)
	outputPath := filepath.Join(c.outputDir, filename)
	if err := imaging.Save(out, outputPath); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "save %s", outputPath)
	}

	return &models.RenderedCard{
		Filename:   filename,
		ItemName:   item.Name,
		TemplateID: item.TemplateID,
		ItemSize:   size,
		Overflow:   overflow,
	}, nil
}

// drawItemName draws the name centered in the item box, shrinking the font
// to fit. Without a box the name is drawn on one line at the configured size
// with its top-left corner at the box origin.
func (c *Composer) drawItemName(dc *gg.Context, f *Font, tc config.TemplateConfig, name string) (float64, bool, error) {
	box := tc.ItemBox
	if box.Empty() {
		face, err := f.Face(tc.ItemMaxSize, c.cfg.LineSpacing)
		if err != nil {
			return 0, false, err
		}
		lines := layout.Lines{strings.Join(strings.Fields(name), " ")}
		drawLines(dc, face, lines, float64(box.X), float64(box.Y), face.BlockWidth(lines))
		return tc.ItemMaxSize, false, nil
	}

	fit, err := layout.FitText(name, f.Source(c.cfg.LineSpacing),
		float64(box.Width), float64(box.Height), tc.ItemMaxSize, tc.ItemMinSize)
	if err != nil {
		return 0, false, err
	}
	if fit.Overflow {
		c.logger.Warn("%q overflows the %dx%d text box of %s even at %.0fpt", name, box.Width, box.Height, tc.ID, fit.Size)
	}
	c.logger.Trace("%q fitted at %.0fpt in %d line(s), %.1fpx tall", name, fit.Size, len(fit.Lines), fit.Height)

	face, ok := fit.Face.(*Face)
	if !ok {
		return 0, false, errors.New(errors.ErrCodeRenderFailed, "unexpected face type %T", fit.Face)
	}
	top := float64(box.Y) + (float64(box.Height)-fit.Height)/2
	drawLines(dc, face, fit.Lines, float64(box.X), top, float64(box.Width))
	return fit.Size, fit.Overflow, nil
}

// drawBid draws the label above the bid value. The block is anchored at its
// top-left corner and each line is centered within the widest one.
func (c *Composer) drawBid(dc *gg.Context, f *Font, tc config.TemplateConfig, bid string) error {
	face, err := f.Face(tc.BidSize, c.cfg.LineSpacing)
	if err != nil {
		return err
	}
	lines := layout.Lines{c.cfg.BidLabel, bid}
	drawLines(dc, face, lines, float64(tc.BidPosition.X), float64(tc.BidPosition.Y), face.BlockWidth(lines))
	return nil
}
