package models

// UpdateHiveSectionRequest is the payload accepted by both the create and the
// update endpoints.
//
// Validation rules are declared with go-playground/validator tags and are
// enforced before the request reaches the service layer.
type UpdateHiveSectionRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=60"`
	Code        string `json:"code" validate:"max=5"`
	StoreHiveID int64  `json:"store_hive_id" validate:"omitempty,gt=0"`
}

// ErrorResponse is the body written for every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
