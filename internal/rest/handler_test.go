package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spectraSense/domain"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAutoSenseService struct {
	mock.Mock
}

func (m *mockAutoSenseService) PredictAndExplain(ctx context.Context, predictiveType string) (domain.PredictionResult, error) {
	args := m.Called(ctx, predictiveType)
	return args.Get(0).(domain.PredictionResult), args.Error(1)
}

type mockAutoEntertainService struct {
	mock.Mock
}

func (m *mockAutoEntertainService) GetMedia(ctx context.Context, genre string) ([]domain.Media, error) {
	args := m.Called(ctx, genre)
	media, _ := args.Get(0).([]domain.Media)
	return media, args.Error(1)
}

func (m *mockAutoEntertainService) Recommend(ctx context.Context, title string) (domain.SimilarityResult, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(domain.SimilarityResult), args.Error(1)
}

var sampleResult = domain.PredictionResult{
	Prediction: 13,
	Explanation: domain.Explanation{
		MostInfluentialFeature: "ads",
		Contribution:           15,
	},
}

var sampleSimilarity = domain.SimilarityResult{
	SelectedMedia:   domain.Media{ID: 1, Title: "Heat", Genre: "Crime, Drama", Rating: 8.3},
	Recommendations: []domain.Media{{ID: 4, Title: "Ronin", Genre: "Crime, Thriller", Rating: 7.2}},
}

func postDimension(t *testing.T, h *DimensionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/dimension", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Dispatch(e.NewContext(req, rec)))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestDimension_Predictive(t *testing.T) {
	sense := new(mockAutoSenseService)
	sense.On("PredictAndExplain", mock.Anything, "sales").Return(sampleResult, nil)
	h := NewDimensionHandler(sense, new(mockAutoEntertainService), time.Second)

	rec := postDimension(t, h, `{"dimension":"P","key":"sales"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sampleResult, got)
	assert.Contains(t, rec.Body.String(), `"mostInfluentialFeature":"ads"`)
	sense.AssertExpectations(t)
}

func TestDimension_PredictiveUnknownType(t *testing.T) {
	sense := new(mockAutoSenseService)
	sense.On("PredictAndExplain", mock.Anything, "nope").
		Return(domain.PredictionResult{}, fmt.Errorf("type %q: %w", "nope", domain.ErrNoDataForType))
	h := NewDimensionHandler(sense, new(mockAutoEntertainService), time.Second)

	rec := postDimension(t, h, `{"dimension":"P","key":"nope"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec), domain.ErrNoDataForType.Error())
}

func TestDimension_Entertainment(t *testing.T) {
	ent := new(mockAutoEntertainService)
	ent.On("Recommend", mock.Anything, "Heat").Return(sampleSimilarity, nil)
	h := NewDimensionHandler(new(mockAutoSenseService), ent, time.Second)

	rec := postDimension(t, h, `{"dimension":"E","mediaInput":"Heat"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.SimilarityResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Ronin", got.Recommendations[0].Title)
	ent.AssertExpectations(t)
}

func TestDimension_EntertainmentNotFound(t *testing.T) {
	ent := new(mockAutoEntertainService)
	ent.On("Recommend", mock.Anything, "Missing").
		Return(domain.SimilarityResult{}, fmt.Errorf("title %q: %w", "Missing", domain.ErrNotFound))
	h := NewDimensionHandler(new(mockAutoSenseService), ent, time.Second)

	rec := postDimension(t, h, `{"dimension":"E","mediaInput":"Missing"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec), "movie not found")
}

func TestDimension_InformationNotImplemented(t *testing.T) {
	h := NewDimensionHandler(new(mockAutoSenseService), new(mockAutoEntertainService), time.Second)

	rec := postDimension(t, h, `{"dimension":"I"}`)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "Information Feature Not Implemented yet.", decodeError(t, rec))
}

func TestDimension_InvalidChoice(t *testing.T) {
	h := NewDimensionHandler(new(mockAutoSenseService), new(mockAutoEntertainService), time.Second)

	for _, body := range []string{`{"dimension":"X"}`, `{"dimension":"p"}`, `{}`} {
		rec := postDimension(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Invalid Choice!", decodeError(t, rec), body)
	}
}

func TestDimension_InternalErrorIsMasked(t *testing.T) {
	sense := new(mockAutoSenseService)
	sense.On("PredictAndExplain", mock.Anything, "sales").
		Return(domain.PredictionResult{}, errors.New("dial tcp: connection refused"))
	h := NewDimensionHandler(sense, new(mockAutoEntertainService), time.Second)

	rec := postDimension(t, h, `{"dimension":"P","key":"sales"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec))
}

func TestAutoSenseHandler_Predict(t *testing.T) {
	sense := new(mockAutoSenseService)
	sense.On("PredictAndExplain", mock.Anything, "sales").Return(sampleResult, nil)
	h := NewAutoSenseHandler(sense, time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/sales", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/predictions/:type")
	c.SetParamNames("type")
	c.SetParamValues("sales")

	require.NoError(t, h.Predict(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mostInfluentialFeature":"ads"`)
	sense.AssertExpectations(t)
}

func TestAutoSenseHandler_PredictInvalidType(t *testing.T) {
	sense := new(mockAutoSenseService)
	sense.On("PredictAndExplain", mock.Anything, " ").Return(domain.PredictionResult{}, domain.ErrInvalidType)
	h := NewAutoSenseHandler(sense, time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/%20", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("type")
	c.SetParamValues(" ")

	require.NoError(t, h.Predict(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAutoEntertainHandler_Recommend(t *testing.T) {
	ent := new(mockAutoEntertainService)
	ent.On("Recommend", mock.Anything, "Heat").Return(sampleSimilarity, nil)
	h := NewAutoEntertainHandler(ent, time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?title=Heat", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Recommend(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selectedMedia"`)
	assert.Contains(t, rec.Body.String(), `"Ronin"`)
}

func TestAutoEntertainHandler_RecommendMissingTitle(t *testing.T) {
	ent := new(mockAutoEntertainService)
	h := NewAutoEntertainHandler(ent, time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Recommend(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ent.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
}

func TestAutoEntertainHandler_GetMedia(t *testing.T) {
	ent := new(mockAutoEntertainService)
	ent.On("GetMedia", mock.Anything, "Drama").Return([]domain.Media{{ID: 2, Title: "Fargo", Genre: "Crime, Drama"}}, nil)
	h := NewAutoEntertainHandler(ent, time.Second)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/media?genre=Drama", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.GetMedia(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Fargo"`)
	ent.AssertExpectations(t)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, NewHealthHandler(fakePinger{}, "1.0.0").Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	require.NoError(t, NewHealthHandler(fakePinger{err: errors.New("down")}, "1.0.0").Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", domain.ErrNoDataForType), http.StatusNotFound},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInvalidType, http.StatusBadRequest},
		{domain.ErrInvalidTitle, http.StatusBadRequest},
		{fmt.Errorf("fetch: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
