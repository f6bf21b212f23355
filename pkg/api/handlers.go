package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/OopsException/ghost-followers/pkg/buildinfo"
	"github.com/OopsException/ghost-followers/pkg/compare"
	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
	gfio "github.com/OopsException/ghost-followers/pkg/io"
)

// Error codes used only at the HTTP layer.
const (
	codeMethodNotAllowed gferrors.Code = "METHOD_NOT_ALLOWED"
	codeBodyTooLarge     gferrors.Code = "BODY_TOO_LARGE"
)

// CompareRequest is the body of POST /v1/compare. Both documents are kept
// raw and decoded the same way files are.
type CompareRequest struct {
	Followers json.RawMessage `json:"followers"`
	Following json.RawMessage `json:"following"`
}

// CompareResponse is the body of a successful POST /v1/compare.
type CompareResponse struct {
	FollowersCount        int      `json:"followers_count"`
	FollowingCount        int      `json:"following_count"`
	NotFollowingBackCount int      `json:"not_following_back_count"`
	NotFollowingBack      []string `json:"not_following_back"`
	Followers             []string `json:"followers,omitempty"`
	Following             []string `json:"following,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes one failure.
type ErrorBody struct {
	Code    gferrors.Code `json:"code"`
	Message string        `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req CompareRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeBodyTooLarge,
				"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		writeError(w, http.StatusBadRequest, gferrors.ErrCodeInvalidJSON, "malformed request body: "+err.Error())
		return
	}
	if len(req.Followers) == 0 || len(req.Following) == 0 {
		writeError(w, http.StatusBadRequest, gferrors.ErrCodeInvalidInput, `both "followers" and "following" are required`)
		return
	}

	followersDoc, err := gfio.ReadJSON(bytes.NewReader(req.Followers))
	if err != nil {
		writeCodedError(w, err)
		return
	}
	followingDoc, err := gfio.ReadJSON(bytes.NewReader(req.Following))
	if err != nil {
		writeCodedError(w, err)
		return
	}

	res, err := compare.Documents(followersDoc, followingDoc)
	if err != nil {
		writeCodedError(w, err)
		return
	}

	resp := CompareResponse{NotFollowingBack: res.NotFollowingBack()}
	resp.FollowersCount, resp.FollowingCount, resp.NotFollowingBackCount = res.Counts()
	if full, _ := strconv.ParseBool(r.URL.Query().Get("full")); full {
		resp.Followers = res.Followers()
		resp.Following = res.Following()
	}

	s.logger.Debug("compared",
		"followers", resp.FollowersCount,
		"following", resp.FollowingCount,
		"not_following_back", resp.NotFollowingBackCount,
		"request_id", RequestIDFromContext(r.Context()))

	writeJSON(w, http.StatusOK, resp)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code gferrors.Code) int {
	switch code {
	case gferrors.ErrCodeInvalidShape:
		return http.StatusUnprocessableEntity
	case gferrors.ErrCodeInvalidJSON, gferrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case gferrors.ErrCodeNotFound, gferrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeCodedError(w http.ResponseWriter, err error) {
	code := gferrors.GetCode(err)
	if code == "" {
		code = gferrors.ErrCodeInternal
	}
	writeError(w, statusFor(code), code, gferrors.UserMessage(err))
}

func writeError(w http.ResponseWriter, status int, code gferrors.Code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
