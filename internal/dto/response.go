package dto

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope. Details are never set for internal errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// DictionaryResponse wraps the glossary with its size.
type DictionaryResponse struct {
	Data  []domain.DictionaryEntry `json:"data"`
	Count int                      `json:"count"`
}
