// Package httperr maps application errors onto the storefront's JSON error
// contract: every failure body is {"error": "<message>"}.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mapper converts a domain or application error into an HTTP status and a
// client-facing message. The second return reports whether the mapper matched.
type Mapper func(err error) (int, string, bool)

// Responder resolves errors through a mapper chain, falling back to a generic
// 500 so internals never leak to the client.
type Responder struct {
	mappers []Mapper
}

func NewResponder(mappers ...Mapper) *Responder {
	return &Responder{mappers: mappers}
}

// AddMapper appends a mapper to the chain.
func (r *Responder) AddMapper(mapper Mapper) {
	r.mappers = append(r.mappers, mapper)
}

// RespondError writes the mapped error body and aborts the request.
func (r *Responder) RespondError(c *gin.Context, err error) {
	r.RespondErrorWithFallback(c, err, "Unable to process request")
}

// RespondErrorWithFallback resolves the error through the chain, using the
// given message for anything unmapped so internals never leak to the client.
func (r *Responder) RespondErrorWithFallback(c *gin.Context, err error, fallback string) {
	for _, mapper := range r.mappers {
		if status, message, ok := mapper(err); ok {
			Respond(c, status, message)
			return
		}
	}
	Respond(c, http.StatusInternalServerError, fallback)
}

// Respond writes a bare {"error": message} body with the given status.
func Respond(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
