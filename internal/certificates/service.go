package certificates

import (
	"fmt"

	"go.uber.org/zap"

	"certgen/internal/render"
)

// Generator renders certificate documents from field bundles. One
// generator may serve concurrent calls; each call builds its own
// document.
type Generator struct {
	style  render.Style
	logger *zap.Logger
}

// NewGenerator creates a generator with a one-time style configuration.
// A nil logger disables logging.
func NewGenerator(style render.Style, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{style: style, logger: logger}
}

// Generate validates the bundle, assembles its flow, renders it with the
// variant's first-page overlays, and writes the finished PDF to destPath.
// The document is either written in full or not at all.
func (g *Generator) Generate(bundle Bundle, destPath string) error {
	r := newRun()
	log := g.logger.With(
		zap.String("run_id", r.id),
		zap.String("variant", string(bundle.Variant())),
	)
	log.Info("generating certificate", zap.String("dest", destPath))

	if err := bundle.Validate(); err != nil {
		r.fail()
		return err
	}

	if err := r.to(stateAssembling); err != nil {
		return err
	}
	seq, err := assemble(bundle.sections())
	if err != nil {
		r.fail()
		return fmt.Errorf("assemble %s certificate: %w", bundle.Variant(), err)
	}
	log.Debug("flow assembled", zap.Int("blocks", len(seq)))

	if err := r.to(stateFinalizing); err != nil {
		return err
	}
	doc, err := render.NewDocument(g.style)
	if err != nil {
		r.fail()
		return fmt.Errorf("prepare %s certificate: %w", bundle.Variant(), err)
	}
	overlays := bundle.overlays()
	err = doc.Build(seq, func(c *render.Canvas) error {
		for _, o := range overlays {
			if err := c.DrawImageFile(o.path, o.x, o.y, o.width); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.fail()
		return fmt.Errorf("render %s certificate: %w", bundle.Variant(), err)
	}

	if err := doc.WriteFile(destPath); err != nil {
		r.fail()
		return fmt.Errorf("write %s certificate: %w", bundle.Variant(), err)
	}
	if err := r.to(stateWritten); err != nil {
		return err
	}
	log.Info("certificate written",
		zap.String("dest", destPath),
		zap.Int("pages", doc.PageCount()),
	)
	return nil
}
