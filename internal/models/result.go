package models

type AnalysisStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type QueueStatusResponse struct {
	QueueLength int  `json:"queue_length"`
	Processing  bool `json:"processing"`
	IsRunning   bool `json:"is_running"`
}

type RetriggerResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
