package entities

// AgeRange buckets a buyer's age.
type AgeRange string

const (
	Age18To25 AgeRange = "18-25"
	Age26To35 AgeRange = "26-35"
	Age36To45 AgeRange = "36-45"
	Age46To55 AgeRange = "46-55"
	Age56To65 AgeRange = "56-65"
	Age65Plus AgeRange = "65+"
)

// FamilyStatus describes household composition.
type FamilyStatus string

const (
	FamilySingle    FamilyStatus = "single"
	FamilyCouple    FamilyStatus = "couple"
	FamilyYoung     FamilyStatus = "family_young"
	FamilyTeen      FamilyStatus = "family_teen"
	FamilyEmptyNest FamilyStatus = "empty_nest"
)

// Occupation buckets a buyer's occupation.
type Occupation string

const (
	OccupationProfessional Occupation = "professional"
	OccupationExecutive    Occupation = "executive"
	OccupationEntrepreneur Occupation = "entrepreneur"
	OccupationStudent      Occupation = "student"
	OccupationRetired      Occupation = "retired"
	OccupationOther        Occupation = "other"
)

// IncomeRange buckets annual income.
type IncomeRange string

const (
	IncomeUnder50k  IncomeRange = "<50k"
	Income50to75k   IncomeRange = "50k-75k"
	Income75to100k  IncomeRange = "75k-100k"
	Income100to150k IncomeRange = "100k-150k"
	Income150to250k IncomeRange = "150k-250k"
	Income250kPlus  IncomeRange = "250k+"
)

// AreaDensity expresses the urban/suburban/rural preference.
type AreaDensity string

const (
	AreaUrban    AreaDensity = "urban"
	AreaSuburban AreaDensity = "suburban"
	AreaRural    AreaDensity = "rural"
	AreaMixed    AreaDensity = "mixed"
)

// EntertainingFrequency describes how often the buyer hosts guests.
type EntertainingFrequency string

const (
	EntertainNever      EntertainingFrequency = "never"
	EntertainRarely     EntertainingFrequency = "rarely"
	EntertainSometimes  EntertainingFrequency = "sometimes"
	EntertainOften      EntertainingFrequency = "often"
	EntertainFrequently EntertainingFrequency = "frequently"
)

// HoldPeriod buckets the expected investment hold period.
type HoldPeriod string

const (
	Hold1To2Years  HoldPeriod = "1-2years"
	Hold3To5Years  HoldPeriod = "3-5years"
	Hold5To10Years HoldPeriod = "5-10years"
	Hold10Plus     HoldPeriod = "10+years"
)

// RiskTolerance describes investment risk appetite.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Amenity names a proximity factor shared by preference weights and
// property proximity scores.
type Amenity string

const (
	AmenityPublicTransport Amenity = "publicTransport"
	AmenitySchools         Amenity = "schools"
	AmenityShopping        Amenity = "shopping"
	AmenityHealthcare      Amenity = "healthcare"
	AmenityRecreation      Amenity = "recreation"
	AmenityNightlife       Amenity = "nightlife"
	AmenityNature          Amenity = "nature"
)

// Amenities lists every amenity in a stable order. Feature extraction and
// the location sub-score iterate this list, so the order must not change.
var Amenities = []Amenity{
	AmenityPublicTransport,
	AmenitySchools,
	AmenityShopping,
	AmenityHealthcare,
	AmenityRecreation,
	AmenityNightlife,
	AmenityNature,
}

// ProximityWeights holds per-amenity importance weights on a 0-10 scale.
type ProximityWeights struct {
	PublicTransport float64 `json:"publicTransport"`
	Schools         float64 `json:"schools"`
	Shopping        float64 `json:"shopping"`
	Healthcare      float64 `json:"healthcare"`
	Recreation      float64 `json:"recreation"`
	Nightlife       float64 `json:"nightlife"`
	Nature          float64 `json:"nature"`
}

// Weight returns the weight for the given amenity.
func (w ProximityWeights) Weight(a Amenity) float64 {
	switch a {
	case AmenityPublicTransport:
		return w.PublicTransport
	case AmenitySchools:
		return w.Schools
	case AmenityShopping:
		return w.Shopping
	case AmenityHealthcare:
		return w.Healthcare
	case AmenityRecreation:
		return w.Recreation
	case AmenityNightlife:
		return w.Nightlife
	case AmenityNature:
		return w.Nature
	}
	return 0
}

// Demographics describes who the buyer is.
type Demographics struct {
	AgeRange       AgeRange     `json:"ageRange"`
	FamilyStatus   FamilyStatus `json:"familyStatus"`
	Occupation     Occupation   `json:"occupation"`
	IncomeRange    IncomeRange  `json:"incomeRange"`
	FirstTimeBuyer bool         `json:"firstTimeBuyer"`
}

// LocationPreferences describes where the buyer wants to live.
type LocationPreferences struct {
	PreferredRegions []string         `json:"preferredRegions"`
	MaxCommuteTime   int              `json:"maxCommuteTime"`
	ProximityFactors ProximityWeights `json:"proximityFactors"`
	UrbanVsRural     AreaDensity      `json:"urbanVsRural"`
}

// SizePreferences bounds bedrooms, bathrooms and floor area.
type SizePreferences struct {
	MinBedrooms     int     `json:"minBedrooms"`
	MaxBedrooms     int     `json:"maxBedrooms"`
	MinBathrooms    int     `json:"minBathrooms"`
	MinSquareMeters float64 `json:"minSquareMeters"`
	MaxSquareMeters float64 `json:"maxSquareMeters,omitempty"`
}

// BudgetConstraints bounds what the buyer can spend. FlexibilityPercentage
// is how far over MaxPrice the buyer is willing to go, as a percentage.
type BudgetConstraints struct {
	MinPrice              float64 `json:"minPrice"`
	MaxPrice              float64 `json:"maxPrice"`
	DownPaymentAvailable  float64 `json:"downPaymentAvailable"`
	MonthlyBudget         float64 `json:"monthlyBudget"`
	FlexibilityPercentage float64 `json:"flexibilityPercentage"`
}

// StylePreferences describes aesthetic and outdoor preferences.
type StylePreferences struct {
	ArchitecturalStyles []ArchitecturalStyle `json:"architecturalStyles"`
	InteriorStyles      []InteriorStyle      `json:"interiorStyles"`
	OutdoorSpace        OutdoorSpace         `json:"outdoorSpace"`
	Parking             ParkingType          `json:"parking"`
}

// PropertyPreferences groups property-shape requirements.
type PropertyPreferences struct {
	PropertyTypes     []PropertyType    `json:"propertyTypes"`
	SizePreferences   SizePreferences   `json:"sizePreferences"`
	BudgetConstraints BudgetConstraints `json:"budgetConstraints"`
	StylePreferences  StylePreferences  `json:"stylePreferences"`
}

// LifestyleFactors describes how the buyer lives. Importance fields are on
// a 0-10 scale.
type LifestyleFactors struct {
	WorkFromHome             bool                  `json:"workFromHome"`
	EntertainingFrequency    EntertainingFrequency `json:"entertainingFrequency"`
	PetOwner                 bool                  `json:"petOwner"`
	FitnessImportance        float64               `json:"fitnessImportance"`
	PrivacyImportance        float64               `json:"privacyImportance"`
	TechnologyImportance     float64               `json:"technologyImportance"`
	SustainabilityImportance float64               `json:"sustainabilityImportance"`
}

// InvestmentGoals describes the buyer's investment intent. Optional on the
// profile; absent goals yield a neutral investment sub-score.
type InvestmentGoals struct {
	PrimaryResidence   bool          `json:"primaryResidence"`
	InvestmentProperty bool          `json:"investmentProperty"`
	RentalPotential    bool          `json:"rentalPotential"`
	ExpectedHoldPeriod HoldPeriod    `json:"expectedHoldPeriod"`
	RiskTolerance      RiskTolerance `json:"riskTolerance"`
}

// UserPreferenceProfile is the buyer's full preference profile consumed by
// the scoring engine.
type UserPreferenceProfile struct {
	UserID              string              `json:"userId"`
	Demographics        Demographics        `json:"demographics"`
	LocationPreferences LocationPreferences `json:"locationPreferences"`
	PropertyPreferences PropertyPreferences `json:"propertyPreferences"`
	LifestyleFactors    LifestyleFactors    `json:"lifestyleFactors"`
	InvestmentGoals     *InvestmentGoals    `json:"investmentGoals,omitempty"`
}

// MaxAffordablePrice returns the budget ceiling after flexibility.
func (b BudgetConstraints) MaxAffordablePrice() float64 {
	return b.MaxPrice * (1 + b.FlexibilityPercentage/100)
}
