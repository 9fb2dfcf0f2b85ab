package phimapi

import (
	"encoding/json"
	"fmt"

	"github.com/hoanvu/gophim/internal/models"
)

// The upstream API answers with three different envelope shapes depending
// on the endpoint family. Each shape gets its own parser; a payload that
// matches none of them is rejected rather than guessed at.

// wirePagination covers the field spellings seen across all shapes
type wirePagination struct {
	TotalItems        int `json:"totalItems"`
	TotalItemsPerPage int `json:"totalItemsPerPage"`
	CurrentPage       int `json:"currentPage"`
	TotalPages        int `json:"totalPages"`
}

func (p wirePagination) normalize() models.Pagination {
	return models.Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		PageSize:    p.TotalItemsPerPage,
		Total:       p.TotalItems,
	}
}

// parseFlat handles the newest-movies shape: items and pagination at the
// top level of the payload.
func parseFlat(body []byte) (*models.PageResult, bool) {
	var env struct {
		Items      []models.Movie  `json:"items"`
		Pagination *wirePagination `json:"pagination"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.Items == nil || env.Pagination == nil {
		return nil, false
	}
	return &models.PageResult{
		Items:      env.Items,
		Pagination: env.Pagination.normalize(),
	}, true
}

// parseDataParams handles the v1 list/search shape: items under data with
// pagination nested under data.params.
func parseDataParams(body []byte) (*models.PageResult, bool) {
	var env struct {
		Data *struct {
			Items  []models.Movie `json:"items"`
			Params *struct {
				Pagination *wirePagination `json:"pagination"`
			} `json:"params"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.Data == nil || env.Data.Items == nil || env.Data.Params == nil || env.Data.Params.Pagination == nil {
		return nil, false
	}
	return &models.PageResult{
		Items:      env.Data.Items,
		Pagination: env.Data.Params.Pagination.normalize(),
	}, true
}

// parseDataFlat handles the older wrapped shape: items under data with
// totalPages/currentPage directly on data.
func parseDataFlat(body []byte) (*models.PageResult, bool) {
	var env struct {
		Data *struct {
			Items       []models.Movie `json:"items"`
			CurrentPage int            `json:"currentPage"`
			TotalPages  int            `json:"totalPages"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.Data == nil || env.Data.Items == nil || env.Data.TotalPages == 0 {
		return nil, false
	}
	return &models.PageResult{
		Items: env.Data.Items,
		Pagination: models.Pagination{
			CurrentPage: env.Data.CurrentPage,
			TotalPages:  env.Data.TotalPages,
		},
	}, true
}

// ParsePage normalizes any of the observed list envelopes into one
// internal page shape
func ParsePage(body []byte) (*models.PageResult, error) {
	if page, ok := parseFlat(body); ok {
		return page, nil
	}
	if page, ok := parseDataParams(body); ok {
		return page, nil
	}
	if page, ok := parseDataFlat(body); ok {
		return page, nil
	}
	return nil, fmt.Errorf("payload matches no known envelope shape")
}

// ParseTags decodes a taxonomy response, either a bare array or wrapped
// under data.items
func ParseTags(body []byte) ([]models.Tag, error) {
	var tags []models.Tag
	if err := json.Unmarshal(body, &tags); err == nil && tags != nil {
		return tags, nil
	}

	var env struct {
		Data *struct {
			Items []models.Tag `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil && env.Data.Items != nil {
		return env.Data.Items, nil
	}

	return nil, fmt.Errorf("taxonomy payload matches no known shape")
}

// ParseDetail decodes the movie detail envelope
func ParseDetail(body []byte) (*models.Movie, []models.ServerGroup, error) {
	var env struct {
		Status   bool                 `json:"status"`
		Msg      string               `json:"msg"`
		Movie    models.Movie         `json:"movie"`
		Episodes []models.ServerGroup `json:"episodes"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("failed to decode detail payload: %w", err)
	}
	if env.Movie.Slug == "" {
		if env.Msg != "" {
			return nil, nil, fmt.Errorf("movie not found: %s", env.Msg)
		}
		return nil, nil, fmt.Errorf("detail payload has no movie")
	}
	return &env.Movie, env.Episodes, nil
}
