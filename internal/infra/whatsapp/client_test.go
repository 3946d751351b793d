//go:build unit

package whatsapp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopbot/internal/domain/outbound"
	"shopbot/internal/infra/whatsapp"
	"shopbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	path string
	auth string
	body map[string]any
}

func newServer(t *testing.T, status int, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))
		w.WriteHeader(status)
		if status/100 != 2 {
			_, _ = w.Write([]byte(`{"error":{"message":"Recipient not in allowed list","type":"OAuthException","code":131030}}`))
			return
		}
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.out"}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(url string) *whatsapp.Client {
	return whatsapp.NewClient(url, "wa-token", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSendText(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, &got)

	err := newClient(srv.URL).SendText(context.Background(), "PNID", "5511999990000", "veja https://loja.test")

	require.NoError(t, err)
	assert.Equal(t, "/PNID/messages", got.path)
	assert.Equal(t, "Bearer wa-token", got.auth)
	assert.Equal(t, "whatsapp", got.body["messaging_product"])
	assert.Equal(t, "5511999990000", got.body["to"])
	text := got.body["text"].(map[string]any)
	assert.Equal(t, "veja https://loja.test", text["body"])
	assert.Equal(t, true, text["preview_url"])
}

func TestSendButtonsClipsToProviderLimits(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, &got)

	buttons := []outbound.Button{
		{ID: "a", Title: "Um título bem maior que vinte"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
		{ID: "d", Title: "D"},
	}
	require.NoError(t, newClient(srv.URL).SendButtons(context.Background(), "PNID", "1", "Escolha", buttons))

	action := got.body["interactive"].(map[string]any)["action"].(map[string]any)
	sent := action["buttons"].([]any)
	require.Len(t, sent, outbound.MaxButtons)
	title := sent[0].(map[string]any)["reply"].(map[string]any)["title"].(string)
	assert.LessOrEqual(t, len([]rune(title)), outbound.MaxButtonTitle)
}

func TestSendListKeepsTenRows(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, &got)

	var rows []outbound.Row
	for i := range 12 {
		rows = append(rows, outbound.Row{ID: fmt.Sprintf("cat_%d", i), Title: "Categoria"})
	}
	list := outbound.List{Body: "Escolha", Sections: []outbound.Section{{Rows: rows}}}
	require.NoError(t, newClient(srv.URL).SendList(context.Background(), "PNID", "1", list))

	action := got.body["interactive"].(map[string]any)["action"].(map[string]any)
	assert.Equal(t, "Menu", action["button"])
	section := action["sections"].([]any)[0].(map[string]any)
	assert.Len(t, section["rows"].([]any), outbound.MaxListRows)
}

func TestSendMediaDocumentCarriesFilename(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, &got)

	media := outbound.Media{Kind: outbound.MediaKindFor("application/pdf"), URL: "https://cdn.test/a.pdf", Filename: "a.pdf", Caption: "Seu arquivo"}
	require.NoError(t, newClient(srv.URL).SendMedia(context.Background(), "PNID", "1", media))

	assert.Equal(t, "document", got.body["type"])
	doc := got.body["document"].(map[string]any)
	assert.Equal(t, "a.pdf", doc["filename"])
	assert.Equal(t, "https://cdn.test/a.pdf", doc["link"])
}

func TestSendFailures(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusBadRequest, &got)

	err := newClient(srv.URL).SendText(context.Background(), "PNID", "1", "oi")
	require.Error(t, err)
	assert.True(t, errs.Is(err, whatsapp.ErrSendFailed))
	assert.True(t, strings.Contains(err.Error(), "Recipient not in allowed list"))

	err = newClient(srv.URL).SendText(context.Background(), "", "1", "oi")
	assert.True(t, errs.Is(err, whatsapp.ErrSendFailed))
}
