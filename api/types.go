// Package api holds the request and response types of the HTTP surface.
package api

import "time"

type CreateMovieRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type CreateMovieResponse struct {
	ID string `json:"id"`
}

type MovieResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Released string `json:"released"`
	Genre    string `json:"genre"`
	Director string `json:"director"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
