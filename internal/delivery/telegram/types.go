package telegram

import (
	"strings"
	"time"
)

// Callback payload prefixes. The button payload *is* the state
// discriminator, so the wire grammar stays stable across variants.
const (
	categoryPrefix = "category_"
	servicePrefix  = "service_"
	retryPayload   = "catalog_retry"
)

type selectionKind int

const (
	selectUnknown selectionKind = iota
	selectCategory
	selectService
	selectRetry
)

// selection inbound tugma payloadining dekodlangan ko'rinishi
type selection struct {
	kind selectionKind
	key  string
}

// decodeSelection decodes a callback payload once at the boundary instead of
// scattering prefix checks through handler logic.
func decodeSelection(data string) selection {
	switch {
	case data == retryPayload:
		return selection{kind: selectRetry}
	case strings.HasPrefix(data, categoryPrefix):
		return selection{kind: selectCategory, key: strings.TrimPrefix(data, categoryPrefix)}
	case strings.HasPrefix(data, servicePrefix):
		return selection{kind: selectService, key: strings.TrimPrefix(data, servicePrefix)}
	default:
		return selection{kind: selectUnknown}
	}
}

const (
	sessionTimeout         = 30 * time.Minute
	sessionCleanupInterval = 10 * time.Minute
	handlerTimeout         = 60 * time.Second
)
