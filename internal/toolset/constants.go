package toolset

import "errors"

// Tier names as they appear in catalogs and requests
const (
	TierNameNone   = "none"
	TierNameStone  = "stone"
	TierNameCopper = "copper"
	TierNameIron   = "iron"
	TierNameBronze = "bronze"
	TierNameSteel  = "steel"
)

// ErrUnknownTier is returned when a tier name cannot be parsed
var ErrUnknownTier = errors.New("unknown tool tier")

// Panic messages for programming errors
const (
	PanicMsgUnknownTierFmt    = "toolset: unknown tier %d"
	PanicMsgUnknownToolsetFmt = "toolset: unknown toolset variant %T"
)
