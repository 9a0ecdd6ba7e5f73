package dto

// Simbologías y tipos de etiqueta soportados.
const (
	SymbologyCode128 = "code128"
	SymbologyEAN13   = "ean13"
	LabelBarcode     = "barcode"
	LabelQR          = "qr"
)

// CodeQuery parámetros de GET /api/products/:id/barcode y /qr.
type CodeQuery struct {
	Symbology string `validate:"omitempty,oneof=code128 ean13"`
	Width     int    `validate:"min=0,max=2000"`
	Height    int    `validate:"min=0,max=2000"`
}

// LabelsRequest body para POST /api/labels (hoja PDF de etiquetas).
type LabelsRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1,max=200,dive,uuid"`
	Kind       string   `json:"kind" validate:"required,oneof=barcode qr"`
	Copies     int      `json:"copies" validate:"omitempty,min=1,max=50"`
}
