package geolocation_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/aether/internal/geolocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func textResponse(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(_ *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
			}, nil
		},
	}
}

func TestHTTPLocator_Locate(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	const endpoint = "https://ipinfo.io/loc"

	t.Run("successful geolocation", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, endpoint, req.URL.String())

				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString("50.4501,30.5234\n")),
				}, nil
			},
		}

		coords, err := geolocation.NewHTTPLocator(client, endpoint, logger).Locate(ctx)

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 50.4501, coords.Latitude, 0.0001)
		assert.InEpsilon(t, 30.5234, coords.Longitude, 0.0001)
	})

	t.Run("malformed body", func(t *testing.T) {
		for _, body := range []string{"", "50.45", ",30.52", "50.45,", "north,east"} {
			coords, err := geolocation.NewHTTPLocator(textResponse(http.StatusOK, body), endpoint, logger).Locate(ctx)

			require.ErrorIs(t, err, geolocation.ErrMalformedLocation, body)
			assert.Nil(t, coords)
		}
	})

	t.Run("HTTP error status", func(t *testing.T) {
		locator := geolocation.NewHTTPLocator(textResponse(http.StatusTooManyRequests, "rate limited"), endpoint, logger)

		coords, err := locator.Locate(ctx)

		require.Error(t, err)
		assert.Nil(t, coords)
		assert.Contains(t, err.Error(), "geolocation endpoint returned status 429")
	})

	t.Run("transport error", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("no route to host")
			},
		}

		_, err := geolocation.NewHTTPLocator(client, endpoint, logger).Locate(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute geolocation request")
	})
}
