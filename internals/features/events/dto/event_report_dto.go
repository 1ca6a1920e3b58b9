package dto

// Report submission arrives as multipart/form-data (the document plus an
// optional comments field), so there is no JSON body struct for it; the
// controller reads the form directly.

// SetReportStatusRequest moves a pending report to a terminal state.
type SetReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
