// Package models contain needed models
package models

// KeyPayload carries every key shape the ciphers accept; each cipher reads
// only the fields its contract names.
type KeyPayload struct {
	Shift         int    `json:"shift"`
	A             int    `json:"a"`
	B             int    `json:"b"`
	Keyword       string `json:"keyword"`
	SecondKeyword string `json:"second_keyword"`
	Depth         int    `json:"depth"`
}

// CipherRequest represents an encrypt or decrypt request
type CipherRequest struct {
	Cipher string     `json:"cipher" binding:"required"`
	Text   string     `json:"text"`
	Key    KeyPayload `json:"key"`
}

// CipherResponse represents the transformation result
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Result  string `json:"result"`
}

// CipherInfo describes one cipher in the catalog endpoint
type CipherInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	KeyShape    string `json:"key_shape"`
}

// CatalogResponse lists the available ciphers
type CatalogResponse struct {
	Success bool         `json:"success"`
	Ciphers []CipherInfo `json:"ciphers"`
}
