package request

type CreateHallRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity" binding:"required"`
}

type UpdateHallRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
}

type CreateExtraServiceRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Scheme   string `json:"scheme" binding:"required,oneof=fixed per_unit complex"`
	UnitSize *int   `json:"unit_size,omitempty"`
}

type UpdateExtraServiceRequest struct {
	Name     *string `json:"name,omitempty"`
	Scheme   *string `json:"scheme,omitempty"`
	UnitSize *int    `json:"unit_size,omitempty"`
}
