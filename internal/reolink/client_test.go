package reolink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/camera-gateway/internal/config"
)

type fakeVendor struct {
	mux        *http.ServeMux
	server     *httptest.Server
	loginCount atomic.Int64

	mu             sync.Mutex
	lastAuthHeader string
}

func newFakeVendor(t *testing.T) *fakeVendor {
	t.Helper()
	v := &fakeVendor{mux: http.NewServeMux()}
	v.server = httptest.NewServer(v.mux)
	t.Cleanup(v.server.Close)
	return v
}

func (v *fakeVendor) stubLogin(code int, accessToken, refreshToken, msg string) {
	v.mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		v.loginCount.Add(1)
		writeJSON(w, map[string]any{
			"code": code,
			"msg":  msg,
			"data": map[string]any{
				"access_token":  accessToken,
				"refresh_token": refreshToken,
			},
		})
	})
}

func (v *fakeVendor) recordAuth(r *http.Request) {
	v.mu.Lock()
	v.lastAuthHeader = r.Header.Get("Authorization")
	v.mu.Unlock()
}

func (v *fakeVendor) authHeader() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastAuthHeader
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func newTestClient(t *testing.T, v *fakeVendor, timeoutSeconds int) *Client {
	t.Helper()
	return NewClient(config.UpstreamConfig{
		BaseURL:        v.server.URL,
		Email:          "owner@example.com",
		Password:       "hunter2",
		CameraUID:      "U1",
		TimeoutSeconds: timeoutSeconds,
	}, zap.NewNop())
}

func Test_AuthenticateStoresSession(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")

	c := newTestClient(t, v, 2)
	require.True(t, c.Authenticate(context.Background()))

	session := c.SessionSnapshot()
	require.Equal(t, "A", session.AccessToken)
	require.Equal(t, "R", session.RefreshToken)
	require.WithinDuration(t, time.Now().Add(23*time.Hour), session.ExpiresAt, time.Minute)
}

func Test_AuthenticateVendorFailureLeavesSessionUntouched(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(1, "", "", "bad credentials")

	c := newTestClient(t, v, 2)
	require.False(t, c.Authenticate(context.Background()))
	require.False(t, c.SessionSnapshot().Present())
}

func Test_AuthenticateNetworkErrorReturnsFalse(t *testing.T) {
	v := newFakeVendor(t)
	c := newTestClient(t, v, 2)
	v.server.Close()

	require.False(t, c.Authenticate(context.Background()))
	require.False(t, c.SessionSnapshot().Present())
}

func Test_GetCameraStatusMapsOnline(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("GET /camera/U1", func(w http.ResponseWriter, r *http.Request) {
		v.recordAuth(r)
		writeJSON(w, map[string]any{
			"code": 0,
			"data": map[string]any{"status": 1, "name": "Cam1", "uid": "U1"},
		})
	})

	c := newTestClient(t, v, 2)
	status, err := c.GetCameraStatus(context.Background(), "U1")
	require.NoError(t, err)

	// The lazy ensure step authenticated first, and the status call carried
	// the freshly stored token.
	require.Equal(t, "Bearer A", v.authHeader())

	require.Equal(t, "Online", status.Status)
	require.Equal(t, "Cam1", status.Name)
	require.Equal(t, "U1", status.UID)
	require.Equal(t, 0, status.Pan)
	require.Equal(t, 0, status.Tilt)
	require.Equal(t, 1, status.Zoom)
}

func Test_GetCameraStatusMapsOffline(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("GET /camera/U1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"code": 0,
			"data": map[string]any{"status": 0, "name": "Cam1", "uid": "U1"},
		})
	})

	c := newTestClient(t, v, 2)
	status, err := c.GetCameraStatus(context.Background(), "U1")
	require.NoError(t, err)
	require.Equal(t, "Offline", status.Status)
}

func Test_GetCameraStatusVendorError(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("GET /camera/U1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"code": 2, "msg": "device unreachable"})
	})

	c := newTestClient(t, v, 2)
	_, err := c.GetCameraStatus(context.Background(), "U1")
	require.EqualError(t, err, "device unreachable")
}

func Test_PTZControl(t *testing.T) {
	tests := []struct {
		name        string
		vendorCode  int
		vendorMsg   string
		wantSuccess bool
		wantMessage string
		wantError   string
	}{
		{
			name:        "vendor accepts",
			vendorCode:  0,
			wantSuccess: true,
			wantMessage: "pan command sent",
		},
		{
			name:        "vendor rejects",
			vendorCode:  1,
			vendorMsg:   "bad",
			wantSuccess: false,
			wantError:   "bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newFakeVendor(t)
			v.stubLogin(0, "A", "R", "")

			var gotBody map[string]int
			v.mux.HandleFunc("POST /camera/U1/ptz", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				writeJSON(w, map[string]any{"code": tt.vendorCode, "msg": tt.vendorMsg})
			})

			c := newTestClient(t, v, 2)
			result := c.PTZControl(context.Background(), "U1", "pan", 10)

			require.Equal(t, map[string]int{"pan": 10}, gotBody)
			require.Equal(t, tt.wantSuccess, result.Success)
			require.Equal(t, tt.wantMessage, result.Message)
			require.Equal(t, tt.wantError, result.Error)
		})
	}
}

func Test_PTZControlNetworkError(t *testing.T) {
	v := newFakeVendor(t)
	c := newTestClient(t, v, 2)
	v.server.Close()

	result := c.PTZControl(context.Background(), "U1", "tilt", -5)
	require.False(t, result.Success)
	require.NotEmpty(t, result.Error)
}

func Test_RecallPreset(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("POST /camera/U1/preset/3", func(w http.ResponseWriter, r *http.Request) {
		v.recordAuth(r)
		writeJSON(w, map[string]any{"code": 0})
	})

	c := newTestClient(t, v, 2)
	result := c.RecallPreset(context.Background(), "U1", "3")

	require.True(t, result.Success)
	require.Equal(t, "Preset recalled", result.Message)
	require.Equal(t, "Bearer A", v.authHeader())
}

func Test_GetPresetsReturnsList(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("GET /camera/U1/presets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"code": 0,
			"data": map[string]any{"presets": []map[string]any{
				{"id": 1, "name": "Door"},
				{"id": 2, "name": "Garden"},
			}},
		})
	})

	c := newTestClient(t, v, 2)
	presets := c.GetPresets(context.Background(), "U1")
	require.Len(t, presets, 2)
	require.Equal(t, "Door", presets[0].Name)
}

func Test_GetPresetsSwallowsFailures(t *testing.T) {
	t.Run("vendor error", func(t *testing.T) {
		v := newFakeVendor(t)
		v.stubLogin(0, "A", "R", "")
		v.mux.HandleFunc("GET /camera/U1/presets", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]any{"code": 5, "msg": "nope"})
		})

		c := newTestClient(t, v, 2)
		require.Empty(t, c.GetPresets(context.Background(), "U1"))
	})

	t.Run("timeout", func(t *testing.T) {
		v := newFakeVendor(t)
		v.stubLogin(0, "A", "R", "")
		v.mux.HandleFunc("GET /camera/U1/presets", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(1500 * time.Millisecond)
			writeJSON(w, map[string]any{"code": 0, "data": map[string]any{"presets": []any{}}})
		})

		c := newTestClient(t, v, 1)
		presets := c.GetPresets(context.Background(), "U1")
		require.NotNil(t, presets)
		require.Empty(t, presets)
	})
}

// Duplicate concurrent authentication is permitted; the guarantee is only
// that every caller eventually observes a stored access token.
func Test_ConcurrentLazyAuthentication(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("GET /camera/U1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"code": 0,
			"data": map[string]any{"status": 1, "name": "Cam1", "uid": "U1"},
		})
	})

	c := newTestClient(t, v, 2)

	const callers = 20
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.GetCameraStatus(context.Background(), "U1")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, fmt.Sprintf("caller %d", i))
	}
	require.GreaterOrEqual(t, v.loginCount.Load(), int64(1))
	require.Equal(t, "A", c.SessionSnapshot().AccessToken)
}

func Test_AuthenticateOnlyWhenTokenAbsent(t *testing.T) {
	v := newFakeVendor(t)
	v.stubLogin(0, "A", "R", "")
	v.mux.HandleFunc("GET /camera/U1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"code": 0,
			"data": map[string]any{"status": 1, "name": "Cam1", "uid": "U1"},
		})
	})

	c := newTestClient(t, v, 2)
	for i := 0; i < 3; i++ {
		_, err := c.GetCameraStatus(context.Background(), "U1")
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), v.loginCount.Load())
}
