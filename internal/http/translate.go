package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signsetu/signsetu/internal/signs"
)

// TranslateController exposes the lexical sign resolver over HTTP for
// clients that cannot run the animation locally.
type TranslateController struct {
	dict *signs.Dictionary
}

func NewTranslateController(dict *signs.Dictionary) *TranslateController {
	return &TranslateController{dict: dict}
}

// TranslateRequest is the request body for a translation.
type TranslateRequest struct {
	Text string `json:"text"`
}

// translatedToken is one resolved token in a translation response.
type translatedToken struct {
	Original   string            `json:"original"`
	Normalized string            `json:"normalized"`
	Sign       *signs.Descriptor `json:"sign,omitempty"`
	HasSign    bool              `json:"has_sign"`
}

// Translate resolves free text against the sign dictionary. Unknown words
// come back unresolved rather than failing the request.
// POST /api/translate
func (tc *TranslateController) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tokens := tc.dict.ResolveText(req.Text)
	resolved := make([]translatedToken, 0, len(tokens))
	matched := 0
	for _, tok := range tokens {
		if tok.HasSign() {
			matched++
		}
		resolved = append(resolved, translatedToken{
			Original:   tok.Original,
			Normalized: tok.Normalized,
			Sign:       tok.Sign,
			HasSign:    tok.HasSign(),
		})
	}

	labels := make(map[signs.Category]string, len(signs.CategoryLabels))
	for _, entry := range signs.CategoryLabels {
		labels[entry.Category] = entry.Label
	}

	c.JSON(http.StatusOK, gin.H{
		"tokens":          resolved,
		"matched":         matched,
		"total":           len(resolved),
		"category_labels": labels,
	})
}

// ListSigns returns the full sign dictionary grouped by category, in
// presentation order.
// GET /api/signs
func (tc *TranslateController) ListSigns(c *gin.Context) {
	grouped := tc.dict.ByCategory()

	type categoryGroup struct {
		Category signs.Category     `json:"category"`
		Label    string             `json:"label"`
		Signs    []signs.Descriptor `json:"signs"`
	}

	groups := make([]categoryGroup, 0, len(signs.CategoryLabels))
	for _, entry := range signs.CategoryLabels {
		descriptors, ok := grouped[entry.Category]
		if !ok {
			continue
		}
		groups = append(groups, categoryGroup{
			Category: entry.Category,
			Label:    entry.Label,
			Signs:    descriptors,
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": groups, "total": tc.dict.Len()})
}
