//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/partgen/cmd"
	"github.com/jsphweid/partgen/instrument"
	"github.com/jsphweid/partgen/model"
	"github.com/jsphweid/partgen/sample"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "partgen-e2e")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("OUT_PATH", dir)
	cmd.LoadServeFiles()

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func createGenerateReqBody() io.Reader {
	reg := instrument.Default()
	gr := model.GenerateRequest{Score: sample.Score().Document(reg.Lookup)}
	data, err := json.Marshal(gr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestGenerateE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate", createGenerateReqBody())
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var generateResponse model.GenerateResponse
	err := json.Unmarshal(respBody, &generateResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.NotEmpty(generateResponse.ID)
	assert.Contains(generateResponse.Report.Generated, "Flute 2")
	assert.Contains(generateResponse.Report.Generated, "Flute 3")
	assert.Contains(generateResponse.Report.Generated, "Oboe")
	assert.Contains(generateResponse.Report.Generated, "Viola")
	assert.Contains(generateResponse.Report.Generated, "Cello")
	assert.Contains(generateResponse.Report.Generated, "Tuba")
	assert.Empty(generateResponse.Report.Unresolved)

	partNames := make(map[string]model.Part)
	for _, p := range generateResponse.Score.Parts {
		partNames[p.Name] = p
	}

	// the 2nd clarinet carries the busiest line, so it wins the flute merge;
	// written clarinet C4 D4 E4 D4 lands on concert Bb3 C4 D4 C4
	flute2, ok := partNames["Flute 2"]
	assert.True(ok)
	assert.Equal(flute2.Measures[0], model.Measure{
		{Pitch: "Bb3", Duration: 1},
		{Pitch: "C4", Duration: 1},
		{Pitch: "D4", Duration: 1},
		{Pitch: "C4", Duration: 1},
	})

	// the cello is the 1st trombone verbatim
	cello, ok := partNames["Cello"]
	assert.True(ok)
	trombone, ok := partNames["1st Trombone"]
	assert.True(ok)
	assert.Equal(cello.Measures, trombone.Measures)
}

func TestGenerateAndFetchE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate", createGenerateReqBody())
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	var generateResponse model.GenerateResponse
	respBody, _ := io.ReadAll(w.Result().Body)
	if err := json.Unmarshal(respBody, &generateResponse); err != nil {
		panic(err.Error())
	}

	router := mux.NewRouter()
	router.HandleFunc("/scores/{id}", cmd.HandleGetScore)
	fetchReq := httptest.NewRequest(http.MethodGet, "/scores/"+generateResponse.ID, nil)
	fetchW := httptest.NewRecorder()
	router.ServeHTTP(fetchW, fetchReq)

	resp := fetchW.Result()
	fetchBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var doc model.ScoreDocument
	if err := json.Unmarshal(fetchBody, &doc); err != nil {
		panic(err.Error())
	}
	assert.Equal(doc.Title, generateResponse.Score.Title)
	assert.Equal(len(doc.Parts), len(generateResponse.Score.Parts))
}

func TestGenerateRejectsGarbageE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	resp := w.Result()
	assert.Equal(t, resp.StatusCode, 400)
}

func TestFetchUnknownScoreE2E(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/scores/{id}", cmd.HandleGetScore)
	req := httptest.NewRequest(http.MethodGet, "/scores/00000000-0000-0000-0000-000000000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, w.Result().StatusCode, 404)
}
