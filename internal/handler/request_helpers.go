package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/ColonyPlanner_Go/internal/logger"
	"github.com/osse101/ColonyPlanner_Go/internal/toolset"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req ResolveRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Resolve requirements"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	if decoder.More() {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", ErrMsgTrailingData)
		respondError(w, http.StatusBadRequest, ErrMsgTrailingData)
		return errors.New(ErrMsgTrailingData)
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// capabilitiesFromQuery reads max_tool, machine_tools and eyeglasses. On a
// malformed value it writes a 400 and returns false.
func capabilitiesFromQuery(r *http.Request, w http.ResponseWriter) (toolset.Capabilities, bool) {
	var caps toolset.Capabilities

	tier, err := toolset.ParseTier(GetOptionalQueryParam(r, QueryMaxTool, toolset.TierNone.String()))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParamFmt, QueryMaxTool))
		return caps, false
	}
	caps.MaxAvailableTool = tier

	flags := []struct {
		name string
		dst  *bool
	}{
		{QueryMachine, &caps.HasMachineTools},
		{QueryEyeglasses, &caps.HasEyeglasses},
	}
	for _, flag := range flags {
		value, err := strconv.ParseBool(GetOptionalQueryParam(r, flag.name, "false"))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParamFmt, flag.name))
			return caps, false
		}
		*flag.dst = value
	}
	return caps, true
}
