// Package ui holds the contracts between the core and the presentation
// layer. The core only ever calls out through these interfaces; the
// presentation layer translates raw input events into Intents and feeds
// them to the Dispatcher.
package ui

import "github.com/youriscent/storefront/internal/domain"

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Renderer displays the current cart and moves input focus during
// checkout validation.
type Renderer interface {
	RenderCart(items []domain.LineItem, totals domain.CartTotals)
	FocusField(field string)
}

// Notifier shows a transient user-facing message.
type Notifier interface {
	Show(message string, severity Severity)
	Hide()
}

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(destination string)
}

// Launcher opens an external deep link. Fire-and-forget: the core gets
// no delivery confirmation.
type Launcher interface {
	OpenLink(url string)
}
