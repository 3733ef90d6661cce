package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{7, "G"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, columnLetter(tt.n), "n=%d", tt.n)
	}
}

func newTestClient(srvURL string) *Client {
	return &Client{
		apiToken:      "test-token",
		spreadsheetID: "sheet-123",
		sheetName:     "Sheet1",
		baseURL:       srvURL,
	}
}

func TestReadTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/sheet-123/values/Sheet1!A:Z", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"values": [][]string{
				{"Status", "Email"},
				{"Sent", "joe@plumb.com"},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	table, err := client.ReadTable(context.Background())

	assert.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, []string{"Sent", "joe@plumb.com"}, table[1])
}

func TestWriteCellNotacaoA1(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		// coluna 6 (0-based) vira G; linha 2 fica G2
		assert.Equal(t, "/sheet-123/values/Sheet1!G2", r.URL.Path)
		assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Values [][]string `json:"values"`
		}
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, [][]string{{"Replied"}}, payload.Values)

		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.WriteCell(context.Background(), 2, 6, "Replied")

	assert.NoError(t, err)
}

func TestAppendRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/sheet-123/values/Sheet1!A:Z:append", r.URL.Path)
		assert.Equal(t, "INSERT_ROWS", r.URL.Query().Get("insertDataOption"))

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Values [][]string `json:"values"`
		}
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "Joe's Plumbing", payload.Values[0][0])

		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	err := client.AppendRow(context.Background(), []string{"Joe's Plumbing", "Joe", "joe@plumb.com"})

	assert.NoError(t, err)
}

func TestStatusNaoOKViraErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "permission denied"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ReadTable(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
