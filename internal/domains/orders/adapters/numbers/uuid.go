// Package numbers generates client-visible order identifiers.
package numbers

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/qashop/storefront-api/internal/domains/orders/ports"
)

var _ ports.NumberGenerator = (*UUIDGenerator)(nil)

// UUIDGenerator derives ORD-prefixed numbers from random UUIDs. Unlike the
// millisecond-clock scheme it replaces, two generations at the same instant
// cannot collide.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// Next returns an identifier like "ORD-3F2A91C04B7D".
func (g *UUIDGenerator) Next() string {
	id := uuid.New()
	return "ORD-" + strings.ToUpper(hex.EncodeToString(id[:6]))
}
