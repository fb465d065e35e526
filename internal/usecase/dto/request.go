package dto

// ToggleRequest - клик по футпринту здания
type ToggleRequest struct {
	BuildingID string `json:"building_id" validate:"required,max=128"`
}

// FootprintHoverRequest - наведение на футпринт или уход с него
type FootprintHoverRequest struct {
	BuildingID string `json:"building_id" validate:"required,max=128"`
}

// DistanceHoverRequest - наведение на строку списка расстояний или уход с неё
type DistanceHoverRequest struct {
	FromID string `json:"from_id" validate:"required,max=128"`
	ToID   string `json:"to_id" validate:"required,max=128,nefield=FromID"`
}

// BuildingListRequest - параметры списка зданий
type BuildingListRequest struct {
	Offset int `query:"offset" validate:"omitempty,min=0"`
	Limit  int `query:"limit" validate:"omitempty,min=1,max=1000"`
}
