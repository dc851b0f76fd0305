package models

import "github.com/google/uuid"

type AnalyticsEventKind string

const (
	EventMenuScanned      AnalyticsEventKind = "menu_scanned"
	EventShareLinkCreated AnalyticsEventKind = "share_link_created"
	EventOrderFinalized   AnalyticsEventKind = "order_finalized"
)

// AnalyticsEvent carries either a menu ID or an item count depending on Kind.
type AnalyticsEvent struct {
	Kind   AnalyticsEventKind `json:"kind"`
	MenuID uuid.UUID          `json:"menu_id,omitempty"`
	Items  int                `json:"items,omitempty"`
}

func MenuScanned(menuID uuid.UUID) AnalyticsEvent {
	return AnalyticsEvent{Kind: EventMenuScanned, MenuID: menuID}
}

func ShareLinkCreated(menuID uuid.UUID) AnalyticsEvent {
	return AnalyticsEvent{Kind: EventShareLinkCreated, MenuID: menuID}
}

func OrderFinalized(items int) AnalyticsEvent {
	return AnalyticsEvent{Kind: EventOrderFinalized, Items: items}
}
