package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Cities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cities", r.URL.Path)
		json.NewEncoder(w).Encode(map[string][]string{"cities": {"Coimbatore", "Chennai"}})
	}))
	defer server.Close()

	cities, err := NewClient(server.URL).Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Coimbatore", "Chennai"}, cities)
}

func TestClient_AreasEscapesCityParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "T. Nagar & Co", r.URL.Query().Get("city"))
		json.NewEncoder(w).Encode(map[string][]string{"areas": {}})
	}))
	defer server.Close()

	areas, err := NewClient(server.URL).Areas(context.Background(), "T. Nagar & Co")
	require.NoError(t, err)
	assert.Empty(t, areas)
}

func TestClient_RegisterSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "John Smith", r.FormValue("Fullname"))
		assert.Equal(t, "secret123", r.FormValue("Password"))

		file, header, err := r.FormFile("ProfilePhoto")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "me.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Registration successful"})
	}))
	defer server.Close()

	fields := map[string]string{
		"Fullname": "John Smith",
		"Password": "secret123",
	}
	err := NewClient(server.URL).Register(context.Background(), fields, "me.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
}

func TestClient_RegisterSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Please provide all required fields"})
	}))
	defer server.Close()

	err := NewClient(server.URL).Register(context.Background(), map[string]string{}, "me.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please provide all required fields")
}

func TestClient_LatestProfilePhoto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"profilePhotoUrl": "uploads/a.png"})
	}))
	defer server.Close()

	path, err := NewClient(server.URL).LatestProfilePhoto(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "uploads/a.png", path)
}
