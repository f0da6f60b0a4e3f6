package model

type GenerateRequest struct {
	PieceID string        `json:"piece_id,omitempty"`
	Score   ScoreDocument `json:"score"`
}

type GenerateResponse struct {
	ID     string           `json:"id"`
	Score  ScoreDocument    `json:"score"`
	Report GenerationReport `json:"report"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
