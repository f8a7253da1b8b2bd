package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError renders err with the status of its kind. Internal errors are
// logged here and reach the caller without details.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	status := apperrors.HTTPStatus(appErr)

	if appErr.Kind == apperrors.KindInternal {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed",
			slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: apperrors.MsgInternal})
		return
	}

	c.JSON(status, dto.ErrorResponse{Error: appErr.Message, Details: appErr.Details})
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(apperrors.MsgInvalidIdentifier, nil)
	}
	return id, nil
}

// decodeBody decodes the request body into a generic JSON value. Numbers stay
// json.Number so amounts keep their exact decimal text.
func decodeBody(c *gin.Context) (any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidJSON, nil)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidJSON, nil)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidJSON, nil)
	}
	return payload, nil
}
