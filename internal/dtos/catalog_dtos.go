package dtos

type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}
