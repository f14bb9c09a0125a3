package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-grocery-list/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestInit_UnknownRoutesAndMethods(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/items"},
		{http.MethodGet, "/api/items/5"},
		{http.MethodPost, "/api/version"},
		{http.MethodGet, "/api/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := s.do(tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(utils.TraceIDHeader))
		})
	}
}
