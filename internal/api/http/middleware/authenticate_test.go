package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/webauth-server/internal/api/http/httpctx"
	"github.com/avolkov/webauth-server/internal/model"
	"github.com/avolkov/webauth-server/internal/testutil"
)

type stubTokenService struct {
	userID int64
	err    error
	got    string
}

func (s *stubTokenService) GetUserID(_ context.Context, token string) (int64, error) {
	s.got = token
	return s.userID, s.err
}

func newAuthenticateEngine(svc *stubTokenService) (*gin.Engine, *int64) {
	gin.SetMode(gin.TestMode)
	contextManager := httpctx.NewManager()
	authenticate := NewAuthenticate(svc, contextManager, testutil.MakeNoopLogger())

	var principal int64
	engine := gin.New()
	engine.GET("/protected", authenticate.Handle, func(c *gin.Context) {
		userID, ok := contextManager.GetUserID(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		principal = userID
		c.Status(http.StatusOK)
	})
	return engine, &principal
}

func doGet(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	svc := &stubTokenService{userID: 7}
	engine, principal := newAuthenticateEngine(svc)

	rec := doGet(engine, "Bearer signed-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed-token", svc.got)
	assert.Equal(t, int64(7), *principal)
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		err           error
	}{
		{name: "missing header", authorization: ""},
		{name: "wrong scheme", authorization: "Basic dXNlcjpwYXNz"},
		{name: "bare token without scheme", authorization: "signed-token"},
		{name: "malformed token", authorization: "Bearer garbage", err: model.ErrTokenMalformed},
		{name: "bad signature", authorization: "Bearer tampered", err: model.ErrTokenSignatureInvalid},
		{name: "expired token", authorization: "Bearer expired", err: model.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newAuthenticateEngine(&stubTokenService{err: tt.err})

			rec := doGet(engine, tt.authorization)

			// Every failure mode answers identically.
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "signed-token", bearerToken("Bearer signed-token"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken("bearer signed-token"))
	assert.Equal(t, "", bearerToken("Basic dXNlcjpwYXNz"))
}
