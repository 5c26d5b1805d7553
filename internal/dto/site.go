package dto

type CheckInRequestDTO struct {
	Kind       string `json:"kind" example:"student"`
	Name       string `json:"name" example:"Ana Sánchez"`
	ID         string `json:"id" example:"2023630123"`
	Group      string `json:"group" example:"5IM03"`
	Load       string `json:"load" example:"COMPLETA MATUTINO"`
	Email      string `json:"email" example:"ana@example.com"`
	Shift      string `json:"shift" example:"Matutino"`
	Occupation string `json:"occupation" example:"Docente"`
}

type SiteActionRequestDTO struct {
	ID int `json:"id" example:"7"`
}

type ObservationRequestDTO struct {
	Kind        string `json:"kind" example:"student"`
	ID          string `json:"id" example:"2023630123"`
	Observation string `json:"observation" example:"Dejó credencial"`
}

type ChessActionRequestDTO struct {
	UserID string `json:"user_id" example:"2023630123"`
	Name   string `json:"name" example:"Ana Sánchez"`
	Kind   string `json:"kind" example:"student"`
	ID     int    `json:"id,omitempty" example:"4"`
}
