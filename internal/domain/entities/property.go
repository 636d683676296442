package entities

import "time"

// PropertyType classifies the building.
type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeTownhouse PropertyType = "townhouse"
	TypePenthouse PropertyType = "penthouse"
	TypeDuplex    PropertyType = "duplex"
)

// DevelopmentStage tracks construction progress.
type DevelopmentStage string

const (
	StageCompleted         DevelopmentStage = "completed"
	StageUnderConstruction DevelopmentStage = "under_construction"
	StagePlanning          DevelopmentStage = "planning"
)

// ArchitecturalStyle classifies the exterior style.
type ArchitecturalStyle string

const (
	ArchModern       ArchitecturalStyle = "modern"
	ArchTraditional  ArchitecturalStyle = "traditional"
	ArchContemporary ArchitecturalStyle = "contemporary"
	ArchVictorian    ArchitecturalStyle = "victorian"
	ArchGeorgian     ArchitecturalStyle = "georgian"
	ArchMinimalist   ArchitecturalStyle = "minimalist"
)

// InteriorStyle classifies the interior finish.
type InteriorStyle string

const (
	InteriorModern       InteriorStyle = "modern"
	InteriorTraditional  InteriorStyle = "traditional"
	InteriorScandinavian InteriorStyle = "scandinavian"
	InteriorIndustrial   InteriorStyle = "industrial"
	InteriorBohemian     InteriorStyle = "bohemian"
	InteriorLuxury       InteriorStyle = "luxury"
)

// OutdoorSpace classifies private outdoor area.
type OutdoorSpace string

const (
	OutdoorNone        OutdoorSpace = "none"
	OutdoorBalcony     OutdoorSpace = "balcony"
	OutdoorGarden      OutdoorSpace = "garden"
	OutdoorLargeGarden OutdoorSpace = "large_garden"
	OutdoorRooftop     OutdoorSpace = "rooftop"
)

// ParkingType classifies parking availability.
type ParkingType string

const (
	ParkingNone     ParkingType = "none"
	ParkingStreet   ParkingType = "street"
	ParkingPrivate  ParkingType = "private"
	ParkingGarage   ParkingType = "garage"
	ParkingMultiple ParkingType = "multiple"
)

// EnergyRating is the BER energy label, A1 (best) through D2.
type EnergyRating string

const (
	EnergyA1 EnergyRating = "A1"
	EnergyA2 EnergyRating = "A2"
	EnergyA3 EnergyRating = "A3"
	EnergyB1 EnergyRating = "B1"
	EnergyB2 EnergyRating = "B2"
	EnergyB3 EnergyRating = "B3"
	EnergyC1 EnergyRating = "C1"
	EnergyC2 EnergyRating = "C2"
	EnergyC3 EnergyRating = "C3"
	EnergyD1 EnergyRating = "D1"
	EnergyD2 EnergyRating = "D2"
)

// NoiseLevel classifies ambient noise around the property.
type NoiseLevel string

const (
	NoiseQuiet    NoiseLevel = "quiet"
	NoiseModerate NoiseLevel = "moderate"
	NoiseBusy     NoiseLevel = "busy"
)

// MarketTrend classifies area price direction.
type MarketTrend string

const (
	TrendRising    MarketTrend = "rising"
	TrendStable    MarketTrend = "stable"
	TrendDeclining MarketTrend = "declining"
)

// CustomizationTier is the customization package level when available.
type CustomizationTier string

const (
	TierBasic    CustomizationTier = "basic"
	TierStandard CustomizationTier = "standard"
	TierPremium  CustomizationTier = "premium"
	TierLuxury   CustomizationTier = "luxury"
)

// BasicInfo holds identity and structural facts about a property.
type BasicInfo struct {
	Address          string           `json:"address"`
	Region           string           `json:"region"`
	PropertyType     PropertyType     `json:"propertyType"`
	Bedrooms         int              `json:"bedrooms"`
	Bathrooms        int              `json:"bathrooms"`
	SquareMeters     float64          `json:"squareMeters"`
	YearBuilt        int              `json:"yearBuilt,omitempty"`
	DevelopmentStage DevelopmentStage `json:"developmentStage"`
}

// PricePoint is one entry of a property's price history.
type PricePoint struct {
	Date        time.Time `json:"date"`
	Price       float64   `json:"price"`
	PriceChange float64   `json:"priceChange"`
}

// Pricing holds list price and payment estimates. PricePerSqm is carried
// as supplied; the engine never recomputes or cross-checks it against
// ListPrice and SquareMeters.
type Pricing struct {
	ListPrice               float64      `json:"listPrice"`
	PricePerSqm             float64      `json:"pricePerSqm"`
	EstimatedMonthlyPayment float64      `json:"estimatedMonthlyPayment"`
	ServiceCharges          float64      `json:"serviceCharges,omitempty"`
	PropertyTax             float64      `json:"propertyTax,omitempty"`
	PriceHistory            []PricePoint `json:"priceHistory,omitempty"`
}

// Features holds style and capability flags.
type Features struct {
	ArchitecturalStyle ArchitecturalStyle `json:"architecturalStyle"`
	InteriorStyle      InteriorStyle      `json:"interiorStyle"`
	OutdoorSpace       OutdoorSpace       `json:"outdoorSpace"`
	Parking            ParkingType        `json:"parking"`
	EnergyRating       EnergyRating       `json:"energyRating"`
	SmartHomeFeatures  bool               `json:"smartHomeFeatures"`
	Accessibility      bool               `json:"accessibility"`
	PetFriendly        bool               `json:"petFriendly"`
}

// Coordinates are geographical coordinates.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProximityScores holds per-amenity 0-10 proximity scores of a property.
type ProximityScores struct {
	PublicTransport float64 `json:"publicTransport"`
	Schools         float64 `json:"schools"`
	Shopping        float64 `json:"shopping"`
	Healthcare      float64 `json:"healthcare"`
	Recreation      float64 `json:"recreation"`
	Nightlife       float64 `json:"nightlife"`
	Nature          float64 `json:"nature"`
}

// Score returns the proximity score for the given amenity.
func (s ProximityScores) Score(a Amenity) float64 {
	switch a {
	case AmenityPublicTransport:
		return s.PublicTransport
	case AmenitySchools:
		return s.Schools
	case AmenityShopping:
		return s.Shopping
	case AmenityHealthcare:
		return s.Healthcare
	case AmenityRecreation:
		return s.Recreation
	case AmenityNightlife:
		return s.Nightlife
	case AmenityNature:
		return s.Nature
	}
	return 0
}

// PropertyLocation holds geography and neighbourhood quality signals.
type PropertyLocation struct {
	Coordinates     Coordinates     `json:"coordinates"`
	WalkScore       float64         `json:"walkScore"`
	TransitScore    float64         `json:"transitScore"`
	ProximityScores ProximityScores `json:"proximityScores"`
	NoiseLevel      NoiseLevel      `json:"noiseLevel"`
	SafetyRating    float64         `json:"safetyRating"`
}

// PriceAppreciation holds trailing price growth as fractions (0.08 = 8%).
type PriceAppreciation struct {
	OneYear   float64 `json:"oneYear"`
	ThreeYear float64 `json:"threeYear"`
	FiveYear  float64 `json:"fiveYear"`
}

// MarketData holds area market context for a property. RentalYield is a
// fraction; zero means unknown.
type MarketData struct {
	AverageAreaPrice  float64           `json:"averageAreaPrice"`
	PriceAppreciation PriceAppreciation `json:"priceAppreciation"`
	RentalYield       float64           `json:"rentalYield,omitempty"`
	MarketTrend       MarketTrend       `json:"marketTrend"`
	SalesVolume       int               `json:"salesVolume"`
	TimeOnMarket      int               `json:"timeOnMarket"`
}

// Customization describes buyer customization compatibility.
type Customization struct {
	Available             bool              `json:"available"`
	PackageOptions        []string          `json:"packageOptions"`
	CustomizationLevel    CustomizationTier `json:"customizationLevel"`
	EstimatedUpgradeValue float64           `json:"estimatedUpgradeValue,omitempty"`
}

// PropertyRecord is a candidate property presented to the scoring engine.
type PropertyRecord struct {
	PropertyID    string           `json:"propertyId"`
	BasicInfo     BasicInfo        `json:"basicInfo"`
	Pricing       Pricing          `json:"pricing"`
	Features      Features         `json:"features"`
	Location      PropertyLocation `json:"location"`
	MarketData    MarketData       `json:"marketData"`
	Customization Customization    `json:"customization"`
}

// MarketSnapshot is a slowly-changing per-region market benchmark used by
// the market-opportunity sub-score and the risk assessment.
type MarketSnapshot struct {
	Region       string      `json:"region"`
	AveragePrice float64     `json:"averagePrice"`
	PriceGrowth  float64     `json:"priceGrowth"`
	RentalYield  float64     `json:"rentalYield"`
	MarketTrend  MarketTrend `json:"marketTrend"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// EnergyRatingScore maps a BER label onto a 0-100 efficiency score.
// Unknown labels score 30.
func EnergyRatingScore(r EnergyRating) float64 {
	switch r {
	case EnergyA1:
		return 100
	case EnergyA2:
		return 95
	case EnergyA3:
		return 90
	case EnergyB1:
		return 85
	case EnergyB2:
		return 80
	case EnergyB3:
		return 75
	case EnergyC1:
		return 70
	case EnergyC2:
		return 65
	case EnergyC3:
		return 60
	case EnergyD1:
		return 50
	case EnergyD2:
		return 40
	}
	return 30
}
