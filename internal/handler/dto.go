package handler

type QueryRequest struct {
	Query string `json:"query"`
}
