package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func serve(t *testing.T, r *Responder, err error) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/things", nil)
	r.RespondError(c, err)

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return w, problem
}

func TestResponder_UsesMappersInOrder(t *testing.T) {
	r := NewResponder("",
		func(err error) (ProblemDetail, bool) {
			if errors.Is(err, errSentinel) {
				return ErrPersistence.WithDetail(err.Error()), true
			}
			return ProblemDetail{}, false
		},
		func(error) (ProblemDetail, bool) { return ErrBadRequest, true },
	)

	w, problem := serve(t, r, errSentinel)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	require.Equal(t, TypePersistence, problem.Type)
	require.Equal(t, "/v1/things", problem.Instance)
}

func TestResponder_FallsBackToInternal(t *testing.T) {
	w, problem := serve(t, NewResponder("https://merrymatch.example"), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "https://merrymatch.example"+TypeInternal, problem.Type)
	require.Equal(t, "boom", problem.Detail)
}

func TestResponder_PassesProblemThrough(t *testing.T) {
	w, problem := serve(t, NewResponder(""), NewNotFoundProblem("wish", "Bo/Kite/2024-12-01"))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "wish", problem.Extensions["kind"])
	require.Equal(t, http.StatusNotFound, HTTPStatusFromError(NewNotFoundProblem("wish", "x")))
}

func TestWithExtension_DoesNotAliasTemplate(t *testing.T) {
	_ = ErrValidation.WithExtension("fields", map[string]string{"item": "required"})
	require.Nil(t, ErrValidation.Extensions)
}
