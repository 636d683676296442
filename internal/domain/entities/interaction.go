package entities

import "time"

// InteractionType classifies a recorded user action on a property.
type InteractionType string

const (
	InteractionView    InteractionType = "view"
	InteractionSave    InteractionType = "save"
	InteractionContact InteractionType = "contact"
	InteractionVisit   InteractionType = "visit"
	InteractionOffer   InteractionType = "offer"
)

// InteractionFeedback carries explicit user feedback on a property.
// Rating is on a 1-10 scale.
type InteractionFeedback struct {
	Rating  int      `json:"rating"`
	Reasons []string `json:"reasons,omitempty"`
}

// Interaction is one recorded user action against a property.
type Interaction struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	PropertyID      string               `json:"propertyId"`
	InteractionType InteractionType      `json:"interactionType"`
	Feedback        *InteractionFeedback `json:"feedback,omitempty"`
	Timestamp       time.Time            `json:"timestamp"`
}

// BehaviorPattern is a coarse classification of a user's browsing style.
type BehaviorPattern string

const (
	BehaviorExplorer   BehaviorPattern = "explorer"
	BehaviorResearcher BehaviorPattern = "researcher"
	BehaviorDecisive   BehaviorPattern = "decisive"
)

// UserInsights aggregates a user's interaction history.
type UserInsights struct {
	TotalInteractions   int             `json:"totalInteractions"`
	ViewedProperties    int             `json:"viewedProperties"`
	SavedProperties     int             `json:"savedProperties"`
	ContactedProperties int             `json:"contactedProperties"`
	AverageRating       float64         `json:"averageRating"`
	BehaviorPattern     BehaviorPattern `json:"behaviorPattern"`
}

// ModelInsights summarizes the predictor and the interaction corpus.
type ModelInsights struct {
	FeatureImportance     map[string]float64 `json:"featureImportance"`
	TotalUserInteractions int                `json:"totalUserInteractions"`
	TotalPropertyViews    int                `json:"totalPropertyViews"`
	LastRetrained         *time.Time         `json:"lastRetrained,omitempty"`
}

// InteractionEvent is published on the event bus whenever an interaction
// is recorded, so consumers can trigger retraining off the write path.
type InteractionEvent struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	PropertyID      string          `json:"propertyId"`
	InteractionType InteractionType `json:"interactionType"`
	HasFeedback     bool            `json:"hasFeedback"`
	Timestamp       time.Time       `json:"timestamp"`
}
