package auth_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/redmonkez12/go-task-api/internal/auth"
	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/mock"
	"github.com/redmonkez12/go-task-api/internal/user"
)

type gateFixture struct {
	tokens     *mock.MockTokenService
	principals *mock.MockPrincipalLookup
	handler    http.Handler
	reached    *bool
	seen       **user.User
}

func newGate(t *testing.T) gateFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	tokens := mock.NewMockTokenService(ctrl)
	principals := mock.NewMockPrincipalLookup(ctrl)

	reached := false
	var seen *user.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seen, _ = auth.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	return gateFixture{
		tokens:     tokens,
		principals: principals,
		handler:    auth.NewMiddleware(tokens, principals).RequireAuth(next),
		reached:    &reached,
		seen:       &seen,
	}
}

func serve(t *testing.T, h http.Handler, authorization string) (*httptest.ResponseRecorder, httputil.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body httputil.Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRequireAuth_MissingToken(t *testing.T) {
	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer", "Bearer    ", "bearer abc", "Token abc"} {
		t.Run(header, func(t *testing.T) {
			gate := newGate(t)

			rec, body := serve(t, gate.handler, header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, "Not authorized, token missing", body.Message)
			assert.False(t, *gate.reached)
		})
	}
}

func TestRequireAuth_InvalidAndExpiredShareMessage(t *testing.T) {
	for _, verifyErr := range []error{auth.ErrInvalidToken, auth.ErrExpiredToken} {
		t.Run(verifyErr.Error(), func(t *testing.T) {
			gate := newGate(t)
			gate.tokens.EXPECT().VerifyToken("garbage").Return(nil, verifyErr)

			rec, body := serve(t, gate.handler, "Bearer garbage")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Not authorized, token invalid", body.Message)
			assert.False(t, *gate.reached)
		})
	}
}

func TestRequireAuth_UnknownPrincipal(t *testing.T) {
	gate := newGate(t)
	id := uuid.New()
	gate.tokens.EXPECT().VerifyToken("tok").Return(&auth.TokenClaims{UserID: id}, nil)
	gate.principals.EXPECT().GetByID(gomock.Any(), id).Return(nil, user.ErrNotFound)

	rec, body := serve(t, gate.handler, "Bearer tok")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized, user not found", body.Message)
	assert.False(t, *gate.reached)
}

func TestRequireAuth_StoreFailure(t *testing.T) {
	gate := newGate(t)
	id := uuid.New()
	gate.tokens.EXPECT().VerifyToken("tok").Return(&auth.TokenClaims{UserID: id}, nil)
	gate.principals.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("connection refused"))

	rec, body := serve(t, gate.handler, "Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, body.Success)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.False(t, *gate.reached)
}

func TestRequireAuth_AttachesPrincipal(t *testing.T) {
	gate := newGate(t)
	principal := &user.User{ID: uuid.New(), Email: "kim@example.com"}
	gate.tokens.EXPECT().VerifyToken("tok").Return(&auth.TokenClaims{UserID: principal.ID}, nil)
	gate.principals.EXPECT().GetByID(gomock.Any(), principal.ID).Return(principal, nil)

	rec, _ := serve(t, gate.handler, "Bearer tok")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, *gate.reached)
	assert.Equal(t, principal, *gate.seen)
}

func TestPrincipalFromContext_Empty(t *testing.T) {
	_, ok := auth.PrincipalFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
