package api_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/api"
	"github.com/katalvlaran/linsys/chart"
)

func server(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	srv := httptest.NewServer(api.NewHandler(logger, api.NewDefaults(), api.WithChartOptions(chart.WithSize(3, 2))))
	t.Cleanup(srv.Close)

	return srv, &logs
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestHandler_Solve(t *testing.T) {
	srv, logs := server(t)

	resp := post(t, srv.URL+"/api/solve", `{"method":"gauss","A":[[2,1],[1,3]],"b":[4,7]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var body struct {
		Method   string `json:"method"`
		Solution struct {
			Variables map[string]string `json:"variables"`
		} `json:"solution"`
		Residual *string           `json:"residual"`
		Steps    []json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "gauss", body.Method)
	require.Equal(t, map[string]string{"x": "1", "y": "2"}, body.Solution.Variables)
	require.NotNil(t, body.Residual)
	require.Equal(t, "0", *body.Residual)
	require.Len(t, body.Steps, 3)
	require.Contains(t, logs.String(), "solved")
}

func TestHandler_DivergingIteration(t *testing.T) {
	srv, logs := server(t)

	resp := post(t, srv.URL+"/api/solve",
		`{"method":"jacobi","A":[[1,1000000],[1000000,1]],"b":[1,1],"max_iterations":100}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Converged  *bool  `json:"converged"`
		Note       string `json:"note"`
		Iterations []struct {
			Iteration int        `json:"iteration"`
			Values    []*float64 `json:"values"`
			MaxError  *float64   `json:"max_error"`
		} `json:"iterations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Converged)
	require.False(t, *body.Converged)
	require.Contains(t, body.Note, "Diverged")
	require.NotEmpty(t, body.Iterations)
	require.Less(t, len(body.Iterations), 100)

	first := body.Iterations[0]
	require.Equal(t, 1, first.Iteration)
	require.NotNil(t, first.Values[0])
	require.Equal(t, 1.0, *first.Values[0])

	last := body.Iterations[len(body.Iterations)-1]
	require.Contains(t, last.Values, (*float64)(nil))
	require.Contains(t, logs.String(), "solved")
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	err := api.WriteJSON(rec, http.StatusOK, map[string]float64{"x": math.Inf(1)})
	require.Error(t, err)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var e api.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	require.Contains(t, e.Error, "encode response")

	rec = httptest.NewRecorder()
	require.NoError(t, api.WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"}))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	srv, logs := server(t)

	resp := post(t, srv.URL+"/api/solve", `{"method":"lu","A":[[1,2],[2,4]],"b":[3,6]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e api.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	require.Contains(t, e.Error, "singular")

	resp = post(t, srv.URL+"/api/solve", `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv.URL+"/api/solve", `{"method":"gauss","A":[["x"]],"b":[1]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	big := `{"method":"gauss","A":[[` + strings.Repeat("1,", api.MaxBodyBytes/2+16) + `1]],"b":[1]}`
	resp = post(t, srv.URL+"/api/solve", big)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	r, err := http.Get(srv.URL + "/api/solve")
	require.NoError(t, err)
	_ = r.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, r.StatusCode)

	require.Contains(t, logs.String(), "request rejected")
}

func TestHandler_ChartAndHealth(t *testing.T) {
	srv, _ := server(t)

	body := `{"method":"gauss-seidel","A":[[10,1,1],[1,10,1],[1,1,10]],"b":[12,12,12]}`
	for _, path := range []string{"/api/chart", "/api/chart?kind=errors"} {
		resp := post(t, srv.URL+path, body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		var buf bytes.Buffer
		_, err := buf.ReadFrom(resp.Body)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	}

	page := post(t, srv.URL+"/api/chart?format=html", body)
	require.Equal(t, http.StatusOK, page.StatusCode)
	require.Contains(t, page.Header.Get("Content-Type"), "text/html")
	var html bytes.Buffer
	_, err := html.ReadFrom(page.Body)
	require.NoError(t, err)
	require.Contains(t, html.String(), "gauss-seidel")

	resp := post(t, srv.URL+"/api/chart", `{"method":"gauss","A":[[1]],"b":[1]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	r, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer r.Body.Close()
	require.Equal(t, http.StatusOK, r.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/solve", nil)
	require.NoError(t, err)
	pre, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = pre.Body.Close()
	require.Equal(t, http.StatusNoContent, pre.StatusCode)
}

func TestHandler_RequestID(t *testing.T) {
	srv, logs := server(t)

	resp := post(t, srv.URL+"/api/solve", `{"method":"lu","A":[[4,3],[6,3]],"b":[1,1]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	generated := resp.Header.Get(api.RequestIDHeader)
	require.Len(t, generated, 36)
	require.Contains(t, logs.String(), "request_id="+generated)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/solve", strings.NewReader(`{"method":"gauss","A":[[1]],"b":[2]}`))
	require.NoError(t, err)
	req.Header.Set(api.RequestIDHeader, "client-42")
	given, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer given.Body.Close()
	require.Equal(t, "client-42", given.Header.Get(api.RequestIDHeader))
	require.Contains(t, logs.String(), "request_id=client-42")
}
