package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signsetu/signsetu/internal/signs"
)

func setupTranslateTest() *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewTranslateController(signs.Default())
	router := gin.New()
	router.POST("/api/translate", controller.Translate)
	router.GET("/api/signs", controller.ListSigns)
	return router
}

type translateResponse struct {
	Tokens []struct {
		Original   string            `json:"original"`
		Normalized string            `json:"normalized"`
		Sign       *signs.Descriptor `json:"sign"`
		HasSign    bool              `json:"has_sign"`
	} `json:"tokens"`
	Matched        int                       `json:"matched"`
	Total          int                       `json:"total"`
	CategoryLabels map[signs.Category]string `json:"category_labels"`
}

func postTranslate(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, translateResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp translateResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestTranslateController_Translate(t *testing.T) {
	router := setupTranslateTest()

	t.Run("resolves known words", func(t *testing.T) {
		w, resp := postTranslate(t, router, `{"text": "Hello namaste"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, 2, resp.Matched)

		require.True(t, resp.Tokens[0].HasSign)
		assert.Equal(t, "Hello", resp.Tokens[0].Original)
		assert.Equal(t, "hello", resp.Tokens[0].Normalized)
		assert.Equal(t, "hello", resp.Tokens[0].Sign.Key)

		require.True(t, resp.Tokens[1].HasSign)
		assert.Equal(t, "namaste", resp.Tokens[1].Sign.Key)
		assert.Equal(t, signs.CategoryIndian, resp.Tokens[1].Sign.Category)

		assert.Len(t, resp.CategoryLabels, len(signs.CategoryLabels))
		assert.NotEmpty(t, resp.CategoryLabels[signs.CategoryIndian])
	})

	t.Run("unknown words come back unresolved", func(t *testing.T) {
		w, resp := postTranslate(t, router, `{"text": "hello xylophone"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, 1, resp.Matched)
		assert.False(t, resp.Tokens[1].HasSign)
		assert.Nil(t, resp.Tokens[1].Sign)
	})

	t.Run("empty text yields an empty translation", func(t *testing.T) {
		w, resp := postTranslate(t, router, `{"text": ""}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, resp.Total)
		assert.Equal(t, 0, resp.Matched)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		w, _ := postTranslate(t, router, `{"text": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTranslateController_ListSigns(t *testing.T) {
	router := setupTranslateTest()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/signs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			Category signs.Category     `json:"category"`
			Label    string             `json:"label"`
			Signs    []signs.Descriptor `json:"signs"`
		} `json:"categories"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, signs.Default().Len(), resp.Total)
	require.NotEmpty(t, resp.Categories)
	assert.Equal(t, signs.CategoryGreeting, resp.Categories[0].Category)
	for _, group := range resp.Categories {
		assert.NotEmpty(t, group.Label)
		assert.NotEmpty(t, group.Signs)
	}
}
