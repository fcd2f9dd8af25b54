// Package handlers is made to handle requests
package handlers

import (
	"ciphertool-backend/cipher"
	"ciphertool-backend/models"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct {
	catalog []models.CipherInfo
}

func NewCipherHandler() *CipherHandler {
	infos := cipher.Catalog()
	catalog := make([]models.CipherInfo, len(infos))
	for i, info := range infos {
		catalog[i] = models.CipherInfo{
			Name:        info.Name,
			Description: info.Description,
			KeyShape:    info.KeyShape,
		}
	}
	return &CipherHandler{catalog: catalog}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": "1.0.0",
	})
}

// ListCiphers returns the catalog of supported ciphers and their key shapes.
func (h *CipherHandler) ListCiphers(c *gin.Context) {
	c.JSON(http.StatusOK, models.CatalogResponse{
		Success: true,
		Ciphers: h.catalog,
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.transform(c, true)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.transform(c, false)
}

func (h *CipherHandler) transform(c *gin.Context, encrypt bool) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	instance, err := cipher.New(req.Cipher, cipher.Key{
		Shift:         req.Key.Shift,
		A:             req.Key.A,
		B:             req.Key.B,
		Keyword:       req.Key.Keyword,
		SecondKeyword: req.Key.SecondKeyword,
		Depth:         req.Key.Depth,
	})
	if err != nil {
		// Unknown cipher names and invalid keys are both caller mistakes.
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	var result string
	if encrypt {
		result, err = instance.Encrypt(req.Text)
	} else {
		result, err = instance.Decrypt(req.Text)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, cipher.ErrInvalidKey) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.CipherResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Result:  result,
	})
}
