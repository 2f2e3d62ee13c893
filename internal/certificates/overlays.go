package certificates

// Overlay placements are literal page coordinates: top-left anchors in
// points on US Letter, independent of where the flow content ends.

// overlayImage is one fixed-position graphic drawn on the first page.
type overlayImage struct {
	path  string
	x     float64
	y     float64
	width float64
}

const (
	sealX     = 393.0
	sealY     = 432.0
	sealWidth = 100.0

	draftSealX     = 72.0
	draftSealY     = 560.0
	draftSealWidth = 110.0

	draftSignatureY     = 640.0
	draftSignatureWidth = 90.0
	draftRectorX        = 150.0
	draftDeanX          = 300.0
	draftRegistrarX     = 450.0
)

func (d ReferenceData) overlays() []overlayImage {
	return []overlayImage{
		{path: d.SealImagePath, x: sealX, y: sealY, width: sealWidth},
	}
}

func (d StudyStatusData) overlays() []overlayImage {
	return []overlayImage{
		{path: d.SealImagePath, x: sealX, y: sealY, width: sealWidth},
	}
}

func (d DraftBoardData) overlays() []overlayImage {
	return []overlayImage{
		{path: d.SealImagePath, x: draftSealX, y: draftSealY, width: draftSealWidth},
		{path: d.RectorSignaturePath, x: draftRectorX, y: draftSignatureY, width: draftSignatureWidth},
		{path: d.DeanSignaturePath, x: draftDeanX, y: draftSignatureY, width: draftSignatureWidth},
		{path: d.RegistrarSignaturePath, x: draftRegistrarX, y: draftSignatureY, width: draftSignatureWidth},
	}
}
