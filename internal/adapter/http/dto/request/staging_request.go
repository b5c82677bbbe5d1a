package request

// PreviewImportRequest triggers an ERP pull into the date's preview.
type PreviewImportRequest struct {
	Data string `json:"data" binding:"required"`
}

// PreviewUpdateRequest patches one staged item. A non-nil empty
// ferramenta_manual clears the manual override.
type PreviewUpdateRequest struct {
	FerramentaManual *string `json:"ferramenta_manual"`
}

// PreviewConfirmRequest promotes the listed staged items into the committed
// schedule of the date.
type PreviewConfirmRequest struct {
	Data    string   `json:"data" binding:"required"`
	ItemIDs []string `json:"item_ids" binding:"required"`
}
