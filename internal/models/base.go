package models

import "github.com/google/uuid"

// Entity id prefixes. Ids are opaque strings of the form "<prefix>-<uuid>".
const (
	IDPrefixService = "srv"
	IDPrefixQuote   = "qte"
	IDPrefixSupply  = "sup"
	IDPrefixPack    = "pack"
)

// NewID generates a new opaque entity id with the given prefix.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
