// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	apiauction "github.com/meterio/timeboost/api/auction"
	apilanefee "github.com/meterio/timeboost/api/lanefee"
)

// Backend everything the query surface reads through.
type Backend interface {
	apiauction.Backend
	apilanefee.Backend
}

// New return api router
func New(backend Backend, allowedOrigins string) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(allowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	apiauction.New(backend).
		Mount(router, "/auction")
	apilanefee.New(backend).
		Mount(router, "/lanefee")

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}))(router).ServeHTTP
}
