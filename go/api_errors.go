package noleggioserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/cantinota/noleggio-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError preserves plain status-plus-error call sites while returning
// RFC 7807 responses.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusUnauthorized:
		problem = apierrors.ErrUnauthorized.WithDetail(err.Error())
	case http.StatusConflict:
		problem = apierrors.ErrConflict.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}
